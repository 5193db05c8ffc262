package preview

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/tilecard/pkg/render"
	"github.com/go-drift/tilecard/pkg/tile"
)

// IconSizePx is the rendered size of an ha-icon.
const IconSizePx = 24

// Face is the font used to estimate text widths. Every glyph of the
// 7x13 face is 7px wide, which also makes it map 1:1 to terminal cells.
var Face font.Face = basicfont.Face7x13

// CellWidthPx is the pixel width of one terminal cell.
const CellWidthPx = 7

// Metrics is the estimated box of a rendered tile, in CSS pixels.
type Metrics struct {
	// Content is the fit-content width of the label and value row.
	Content int
	// Inner is the content box width: the wrapper width, grown to fit.
	Inner int
	// Outer includes the wrapper padding.
	Outer int
}

// TextWidth returns the advance of s in Face, rounded up to whole pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// Measure estimates the size of t. The wrapper is a fixed-width box
// that grows to fit its content, plus padding on both sides.
func Measure(t *tile.Tile) Metrics {
	parts := partsOf(t.Root)
	row := TextWidth(parts.value)
	if parts.hasIcon {
		row += IconSizePx + tile.IconPaddingRightPx
	}
	content := max(TextWidth(parts.label), row)
	inner := max(tile.WrapperWidthPx, content)
	return Metrics{
		Content: content,
		Inner:   inner,
		Outer:   inner + 2*tile.WrapperPaddingPx,
	}
}

// Cells converts a pixel width to terminal cells, rounding up.
func Cells(px int) int {
	return (px + CellWidthPx - 1) / CellWidthPx
}

// tileParts are the displayed pieces of a tile's render description.
type tileParts struct {
	label   string
	hasIcon bool
	value   string
}

func partsOf(root *render.Node) tileParts {
	var p tileParts
	render.Walk(root, func(n *render.Node) bool {
		switch {
		case n.HasClass(tile.TitleClass):
			p.label = n.TextContent()
			return false
		case n.HasClass(tile.ValueClass):
			p.value = n.TextContent()
			return false
		case n.HasClass(tile.IconClass):
			p.hasIcon = true
			return false
		}
		return true
	})
	return p
}
