// Package preview draws tiles in a terminal. It reads the same style sheet
// a browser would get, resolves theme tokens through a palette and maps
// CSS pixels to character cells.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/tilecard/pkg/style"
	"github.com/go-drift/tilecard/pkg/theme"
	"github.com/go-drift/tilecard/pkg/tile"
)

// IconGlyph stands in for any icon.
const IconGlyph = "●"

// Renderer draws tiles with lipgloss.
type Renderer struct {
	Sheet   style.Sheet
	Palette theme.Palette
}

// New returns a renderer for the tile style sheet and palette p.
func New(p theme.Palette) *Renderer {
	return &Renderer{Sheet: tile.Styles(), Palette: p}
}

func (r *Renderer) lookup(class, property string) string {
	v, _ := r.Sheet.Lookup("."+class, property)
	return r.Palette.Resolve(v)
}

func (r *Renderer) padCells() int {
	return Cells(pxValue(r.lookup(tile.WrapperClass, "padding")))
}

func (r *Renderer) wrapperStyle(selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, r.padCells())
	if bg := r.lookup(tile.WrapperClass, "background-color"); bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if fg := r.lookup(tile.WrapperClass, "color"); fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}

	border := lipgloss.NormalBorder()
	if pxValue(r.lookup(tile.WrapperClass, "border-radius")) > 0 {
		border = lipgloss.RoundedBorder()
	}
	if selected {
		border = lipgloss.ThickBorder()
	}
	return s.Border(border)
}

// Tile draws one tile. A selected tile gets a heavier border.
func (r *Renderer) Tile(t *tile.Tile, selected bool) string {
	parts := partsOf(t.Root)
	m := Measure(t)

	title := lipgloss.NewStyle()
	if r.lookup(tile.TitleClass, "font-size") == "smaller" {
		title = title.Faint(true)
	}

	row := parts.value
	if parts.hasIcon {
		gap := strings.Repeat(" ", Cells(pxValue(r.lookup(tile.IconClass, "padding-right"))))
		row = IconGlyph + gap + row
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title.Render(parts.label),
		row,
	)
	return r.wrapperStyle(selected).
		Width(Cells(m.Inner) + 2*r.padCells()).
		Render(body)
}

// Board lays tiles out left to right, wrapping rows at width cells. A
// width of zero never wraps. selected is the index of the highlighted
// tile, or -1.
func (r *Renderer) Board(tiles []*tile.Tile, width, selected int) string {
	var rows []string
	var row []string
	used := 0
	for i, t := range tiles {
		view := r.Tile(t, i == selected)
		w := lipgloss.Width(view)
		if width > 0 && len(row) > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, view)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// pxValue parses "10px" as 10. Other units and malformed values yield 0.
func pxValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil {
		return 0
	}
	return n
}
