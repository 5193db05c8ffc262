// Package testing provides helpers for testing tile render descriptions.
//
// # Quick Start
//
// Render a tile, then query its element tree:
//
//	func TestBatteryTile(t *testing.T) {
//	    tl := tile.Render(cfg, env)
//
//	    value := tiletest.Find(tl.Root, tiletest.ByClass("tile-value"))
//	    if got := value.Text(); got != "42%" {
//	        t.Errorf("value = %q, want 42%%", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare a golden snapshot of the markup and tree:
//
//	tiletest.Capture(tl.Root).MatchesFile(t, "testdata/battery.snapshot.json")
//
// Update snapshots with:
//
//	TILECARD_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Gestures
//
// Fire gestures at the tile's handler and inspect what was dispatched:
//
//	rec := &action.Recorder{}
//	tl := tile.Render(cfg, tile.Env{Dispatcher: rec})
//	tiletest.Hold(t, tl.Root)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tiletest "github.com/go-drift/tilecard/pkg/testing"
package testing
