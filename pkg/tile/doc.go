// Package tile resolves, formats and renders a single dashboard tile.
//
// A tile reads one raw value from a live entity state, an entity attribute
// or a card variable. The value is then normalized (scaled by a multiplier
// and optionally rounded to a fixed number of decimals) and translated
// through a case-insensitive lookup table. The result is rendered as a
// small element tree with a label, an optional icon, the value and a unit
// suffix:
//
//	tl := tile.Render(&tile.Config{
//		Entity:    "sensor.battery",
//		Precision: tile.Ptr(0),
//		Label:     "Battery",
//		Unit:      "%",
//	}, tile.Env{States: states})
//	fmt.Println(tl.Markup())
//
// Rendering is pure and never fails. Configuration and lookup problems are
// reported through the errors package and the tile shows a blank value.
package tile
