package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"
)

// Reserved map markers. Both sit on a plain floor tile.
const (
	PlayerStartMarker = '@'
	ZombieSpawnMarker = 'Z'
)

var (
	ErrEmptyMap          = errors.New("map file contains no valid map data")
	ErrInconsistentWidth = errors.New("map rows have inconsistent width")
)

// TerrainObject is a standing obstacle (house, tree) placed on a tile.
type TerrainObject struct {
	Tile   TileCoord
	Key    string
	Sprite string
}

// MapData contains the loaded map information
type MapData struct {
	Width        int
	Height       int
	Tiles        [][]string // tile keys, indexed [y][x]
	Impassable   []TileCoord
	Objects      []TerrainObject
	ZombieSpawns []TileCoord
	PlayerStart  TileCoord
	HasStart     bool
}

// MapLoader handles loading world maps from files
type MapLoader struct {
	legend *TileLegend
	floor  string // key used under spawn markers
}

// NewMapLoader creates a map loader. A nil legend uses DefaultTileLegend.
func NewMapLoader(legend *TileLegend) *MapLoader {
	if legend == nil {
		legend = DefaultTileLegend()
	}
	return &MapLoader{legend: legend, floor: "grass"}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	mapData, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", mapPath, err)
	}
	log.Printf("[MapLoader] Loaded %s: %dx%d, %d impassable, %d zombie spawns",
		mapPath, mapData.Width, mapData.Height, len(mapData.Impassable), len(mapData.ZombieSpawns))
	return mapData, nil
}

// Parse reads a text-grid map. Empty lines and lines starting with '#' are skipped.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	height := len(lines)
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: line %d expected %d, got %d", ErrInconsistentWidth, i+1, width, n)
		}
	}

	mapData := &MapData{
		Width:  width,
		Height: height,
		Tiles:  make([][]string, height),
	}

	for y, line := range lines {
		mapData.Tiles[y] = make([]string, width)
		x := 0
		for _, char := range line {
			tile := TileCoord{X: x, Y: y}
			switch char {
			case PlayerStartMarker:
				if mapData.HasStart {
					return nil, fmt.Errorf("duplicate player start at (%d,%d)", x, y)
				}
				mapData.PlayerStart = tile
				mapData.HasStart = true
				mapData.Tiles[y][x] = ml.floor
			case ZombieSpawnMarker:
				mapData.ZombieSpawns = append(mapData.ZombieSpawns, tile)
				mapData.Tiles[y][x] = ml.floor
			default:
				key, def, err := ml.legend.Lookup(char)
				if err != nil {
					return nil, fmt.Errorf("line %d column %d: %w", y+1, x+1, err)
				}
				mapData.Tiles[y][x] = key
				if def.Solid {
					mapData.Impassable = append(mapData.Impassable, tile)
				}
				if def.Object {
					mapData.Objects = append(mapData.Objects, TerrainObject{Tile: tile, Key: key, Sprite: def.Sprite})
				}
			}
			x++
		}
	}

	return mapData, nil
}

// Grid builds the static tile model for this map.
func (md *MapData) Grid(tileSize, yOffset float64) *Grid {
	return NewGrid(md.Width, md.Height, tileSize, yOffset, md.Impassable)
}
