package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMap(t *testing.T) {
	src := `# comment line
..T.
.@HZ

Z...
`
	md, err := NewMapLoader(nil).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if md.Width != 4 || md.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", md.Width, md.Height)
	}
	if !md.HasStart || md.PlayerStart != (TileCoord{X: 1, Y: 1}) {
		t.Errorf("player start = %v (has=%v)", md.PlayerStart, md.HasStart)
	}
	wantSpawns := []TileCoord{{X: 3, Y: 1}, {X: 0, Y: 2}}
	if len(md.ZombieSpawns) != len(wantSpawns) {
		t.Fatalf("spawns = %v", md.ZombieSpawns)
	}
	for i, s := range wantSpawns {
		if md.ZombieSpawns[i] != s {
			t.Errorf("spawn %d = %v, want %v", i, md.ZombieSpawns[i], s)
		}
	}
	wantBlocked := []TileCoord{{X: 2, Y: 0}, {X: 2, Y: 1}}
	if len(md.Impassable) != len(wantBlocked) {
		t.Fatalf("impassable = %v", md.Impassable)
	}
	for i, b := range wantBlocked {
		if md.Impassable[i] != b {
			t.Errorf("impassable %d = %v, want %v", i, md.Impassable[i], b)
		}
	}
	if len(md.Objects) != 2 || md.Objects[0].Key != "tree" || md.Objects[1].Key != "house" {
		t.Errorf("objects = %+v", md.Objects)
	}
	if md.Tiles[1][1] != "grass" || md.Tiles[1][3] != "grass" {
		t.Errorf("markers should sit on grass, got %q and %q", md.Tiles[1][1], md.Tiles[1][3])
	}

	g := md.Grid(64, 32)
	if !g.IsImpassable(TileCoord{X: 2, Y: 1}) {
		t.Errorf("grid lost the house tile")
	}
}

func TestParseMapErrors(t *testing.T) {
	ml := NewMapLoader(nil)

	if _, err := ml.Parse(strings.NewReader("# only comments\n\n")); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("empty map err = %v", err)
	}
	if _, err := ml.Parse(strings.NewReader("...\n..\n")); !errors.Is(err, ErrInconsistentWidth) {
		t.Errorf("ragged map err = %v", err)
	}
	if _, err := ml.Parse(strings.NewReader("..q\n")); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("unknown letter err = %v", err)
	}
	if _, err := ml.Parse(strings.NewReader("@.@\n")); err == nil {
		t.Errorf("expected duplicate start error")
	}
}

func TestLoadMapFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("..\n@.\n"), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	md, err := NewMapLoader(nil).LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if md.Width != 2 || md.Height != 2 {
		t.Errorf("size = %dx%d", md.Width, md.Height)
	}

	if _, err := NewMapLoader(nil).LoadMap(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestRepoMapLoads(t *testing.T) {
	legend := NewTileLegend()
	if err := legend.LoadTileConfig(filepath.Join("..", "..", "assets", "tiles.yaml")); err != nil {
		t.Fatalf("load tiles: %v", err)
	}
	md, err := NewMapLoader(legend).LoadMap(filepath.Join("..", "..", "assets", "map.txt"))
	if err != nil {
		t.Fatalf("load map: %v", err)
	}
	if !md.HasStart {
		t.Fatalf("repo map has no player start")
	}
	g := md.Grid(64, 32)
	if !g.IsPassableTile(md.PlayerStart) {
		t.Errorf("player start %v is not passable", md.PlayerStart)
	}
	for _, s := range md.ZombieSpawns {
		if !g.IsPassableTile(s) {
			t.Errorf("zombie spawn %v is not passable", s)
		}
	}
}
