package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeT records failures instead of failing the enclosing test.
type fakeT struct {
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Setenv("TILECARD_UPDATE_SNAPSHOTS", "")
	path := filepath.Join(t.TempDir(), "nested", "tile.snapshot.json")
	snap := Capture(sampleTree())

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{}
	Capture(sampleTree()).MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Errorf("unexpected failures: %v %v", ft.fatals, ft.errors)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"markup": "<div class=\"card\">`) {
		t.Errorf("snapshot should hold unescaped markup, got:\n%s", data)
	}
}

func TestSnapshotMismatch(t *testing.T) {
	t.Setenv("TILECARD_UPDATE_SNAPSHOTS", "")
	path := filepath.Join(t.TempDir(), "tile.snapshot.json")
	if err := Capture(sampleTree()).UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	changed := sampleTree()
	changed.Children[0].Text = "Water"

	ft := &fakeT{}
	Capture(changed).MatchesFile(ft, path)
	if len(ft.errors) != 1 {
		t.Fatalf("errors = %v, want one mismatch", ft.errors)
	}
	if !strings.Contains(ft.errors[0], "+") || !strings.Contains(ft.errors[0], "Water") {
		t.Errorf("mismatch should include a diff, got %q", ft.errors[0])
	}
}

func TestSnapshotMissingFile(t *testing.T) {
	t.Setenv("TILECARD_UPDATE_SNAPSHOTS", "")
	ft := &fakeT{}
	Capture(sampleTree()).MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("fatals = %v", ft.fatals)
	}
}
