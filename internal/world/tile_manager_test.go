package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTileConfig(t *testing.T) {
	tl := NewTileLegend()
	if err := tl.LoadTileConfig(filepath.Join("..", "..", "assets", "tiles.yaml")); err != nil {
		t.Fatalf("LoadTileConfig: %v", err)
	}

	def := DefaultTileLegend()
	for _, key := range def.Keys() {
		want, _ := def.Get(key)
		got, ok := tl.Get(key)
		if !ok {
			t.Errorf("tiles.yaml is missing %q", key)
			continue
		}
		if *got != *want {
			t.Errorf("tile %q = %+v, want %+v", key, *got, *want)
		}
	}

	key, house, err := tl.Lookup('H')
	if err != nil || key != "house" || !house.Solid || !house.Object {
		t.Errorf("Lookup('H') = %q %+v %v", key, house, err)
	}
	if _, _, err := tl.Lookup('?'); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("Lookup('?') err = %v", err)
	}
}

func TestTileLegendRejectsBadLetters(t *testing.T) {
	tl := NewTileLegend()
	if err := tl.Add("a", TileDef{Letter: "."}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := tl.Add("b", TileDef{Letter: "."}); err == nil {
		t.Errorf("expected duplicate letter error")
	}
	if err := tl.Add("c", TileDef{Letter: "ab"}); err == nil {
		t.Errorf("expected multi-character letter error")
	}
	if err := tl.Add("d", TileDef{Letter: "@"}); err == nil {
		t.Errorf("expected reserved letter error")
	}
}

func TestLoadTileConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.yaml")
	if err := os.WriteFile(path, []byte("tiles: [not, a, map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := NewTileLegend().LoadTileConfig(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestMustTileLegendPanicsOnConflict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for a duplicated letter")
		}
	}()
	MustTileLegend(
		TileEntry{Key: "grass", Def: TileDef{Letter: "."}},
		TileEntry{Key: "sand", Def: TileDef{Letter: "."}},
	)
}

func TestDefaultTileLegendBuilds(t *testing.T) {
	tl := DefaultTileLegend()
	if got := len(tl.Keys()); got != len(defaultTiles) {
		t.Errorf("default legend has %d tiles, want %d", got, len(defaultTiles))
	}
}
