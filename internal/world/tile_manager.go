package world

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTile is returned when a map letter has no legend entry.
var ErrUnknownTile = errors.New("unknown tile letter")

// TileDef describes one tile kind from the legend file.
type TileDef struct {
	Name   string `yaml:"name"`
	Letter string `yaml:"letter"`
	Solid  bool   `yaml:"solid"`
	Object bool   `yaml:"object"` // drawn as a standing terrain object
	Sprite string `yaml:"sprite"`
	Color  [3]int `yaml:"color"`
}

type tileLegendFile struct {
	Tiles map[string]TileDef `yaml:"tiles"`
}

// TileLegend maps map letters to tile definitions.
type TileLegend struct {
	byKey    map[string]*TileDef
	byLetter map[rune]string
}

// NewTileLegend creates an empty legend.
func NewTileLegend() *TileLegend {
	return &TileLegend{
		byKey:    make(map[string]*TileDef),
		byLetter: make(map[rune]string),
	}
}

// TileEntry pairs a legend key with its definition.
type TileEntry struct {
	Key string
	Def TileDef
}

var defaultTiles = []TileEntry{
	{"grass", TileDef{Name: "Grass", Letter: ".", Color: [3]int{70, 110, 60}}},
	{"road", TileDef{Name: "Road", Letter: ",", Color: [3]int{120, 110, 95}}},
	{"house", TileDef{Name: "House", Letter: "H", Solid: true, Object: true, Sprite: "house", Color: [3]int{150, 80, 60}}},
	{"tree", TileDef{Name: "Tree", Letter: "T", Solid: true, Object: true, Sprite: "tree", Color: [3]int{30, 90, 40}}},
	{"rock", TileDef{Name: "Rock", Letter: "R", Solid: true, Color: [3]int{110, 110, 110}}},
}

// DefaultTileLegend is the built-in legend matching assets/tiles.yaml.
func DefaultTileLegend() *TileLegend {
	return MustTileLegend(defaultTiles...)
}

// MustTileLegend builds a legend from entries and panics if any is rejected.
func MustTileLegend(entries ...TileEntry) *TileLegend {
	tl := NewTileLegend()
	var errs []error
	for _, e := range entries {
		if err := tl.Add(e.Key, e.Def); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		panic(fmt.Sprintf("invalid tile legend: %v", err))
	}
	return tl
}

// LoadTileConfig loads the tile legend from a YAML file
func (tl *TileLegend) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}

	var file tileLegendFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	tl.byKey = make(map[string]*TileDef)
	tl.byLetter = make(map[rune]string)

	// Sorted keys keep letter-conflict errors stable.
	keys := make([]string, 0, len(file.Tiles))
	for key := range file.Tiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := tl.Add(key, file.Tiles[key]); err != nil {
			return err
		}
	}
	return nil
}

// Add registers a tile definition under key.
func (tl *TileLegend) Add(key string, def TileDef) error {
	runes := []rune(def.Letter)
	if len(runes) != 1 {
		return fmt.Errorf("tile %q: letter must be a single character, got %q", key, def.Letter)
	}
	if reserved(runes[0]) {
		return fmt.Errorf("tile %q: letter %q is reserved for spawn markers", key, def.Letter)
	}
	if other, exists := tl.byLetter[runes[0]]; exists && other != key {
		return fmt.Errorf("tile %q: letter %q already used by %q", key, def.Letter, other)
	}
	defCopy := def
	tl.byKey[key] = &defCopy
	tl.byLetter[runes[0]] = key
	return nil
}

// Lookup resolves a map letter.
func (tl *TileLegend) Lookup(letter rune) (string, *TileDef, error) {
	key, ok := tl.byLetter[letter]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownTile, letter)
	}
	return key, tl.byKey[key], nil
}

// Get returns the definition stored under key.
func (tl *TileLegend) Get(key string) (*TileDef, bool) {
	def, ok := tl.byKey[key]
	return def, ok
}

// Keys returns all tile keys in sorted order.
func (tl *TileLegend) Keys() []string {
	keys := make([]string, 0, len(tl.byKey))
	for key := range tl.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func reserved(r rune) bool {
	return r == PlayerStartMarker || r == ZombieSpawnMarker
}
