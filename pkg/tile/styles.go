package tile

import (
	"strconv"

	"github.com/go-drift/tilecard/pkg/style"
	"github.com/go-drift/tilecard/pkg/theme"
)

// Tile geometry, in CSS pixels.
const (
	WrapperWidthPx       = 80
	WrapperPaddingPx     = 10
	ValueRowPaddingTopPx = 5
	IconPaddingRightPx   = 5
)

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// Styles returns the tile style sheet. It does not depend on any tile's
// configuration; colors and radius come from the card's theme tokens.
func Styles() style.Sheet {
	return style.Sheet{
		{Selector: "." + WrapperClass, Decls: []style.Decl{
			style.D("min-width", "fit-content"),
			style.D("width", px(WrapperWidthPx)),
			style.D("padding", px(WrapperPaddingPx)),
			style.D("border-radius", theme.SmallRadius.Var()),
			style.D("background-color", theme.TertiaryColor.Var()),
			style.D("flex-grow", "1"),
			style.D("overflow", "hidden"),
			style.D("color", theme.TertiaryTextColor.Var()),
		}},
		{Selector: "." + TitleClass, Decls: []style.Decl{
			style.D("font-size", "smaller"),
		}},
		{Selector: "." + ValueWrapperClass, Decls: []style.Decl{
			style.D("display", "inline-flex"),
			style.D("align-items", "flex-end"),
			style.D("padding-top", px(ValueRowPaddingTopPx)),
		}},
		{Selector: "." + IconClass, Decls: []style.Decl{
			style.D("padding-right", px(IconPaddingRightPx)),
		}},
		{Selector: "." + ValueClass},
	}
}
