package game

import (
	"math"
	"sort"

	"isozombie/internal/mathutil"
	"isozombie/internal/projection"
)

// SpriteKind selects the sheet a sprite instance is cut from.
type SpriteKind int

const (
	SpriteObject SpriteKind = iota
	SpriteZombie
	SpriteCharacter
	SpriteBullet
)

// SpriteInstance is one drawable staged for the renderer.
type SpriteInstance struct {
	Kind     SpriteKind
	Index    int // row in the owning entity table
	Position mathutil.Vec
	Column   int
	Row      int
	Depth    float64 // larger is further back
	Sprite   string  // object sprite key, empty for animated sheets
}

// HUD carries the numbers the overlay prints.
type HUD struct {
	Tick           uint64
	GameSeconds    int64
	ZombiesAlive   int
	ZombiesTotal   int
	Kills          int
	Bullets        int
	CameraDistance float64
	Stance         string
	Blocked        bool
}

// RenderFrame is the staged output of one tick. The renderer reads it; the
// simulation never touches ebiten types.
type RenderFrame struct {
	Projection projection.Projection
	Terrain    mathutil.Vec // view-space position of the map origin
	Sprites    []SpriteInstance
	HUD        HUD
}

// stageMargin keeps sprites whose centre is just off screen.
const stageMargin = 128

// StageFrame fills dst from the current state, reusing its sprite slice.
// Sprites outside the visible area are culled, the rest sorted back to front.
func StageFrame(s *SimulationState, proj projection.Projection, dst *RenderFrame) {
	dst.Projection = proj
	dst.Terrain = s.TerrainPosition()
	dst.Sprites = dst.Sprites[:0]

	halfW := proj.Aspect*proj.Distance + stageMargin
	halfH := proj.Distance + stageMargin
	visible := func(p mathutil.Vec) bool {
		return math.Abs(p.X) <= halfW && math.Abs(p.Y) <= halfH
	}

	for i, obj := range s.Objects {
		if !visible(obj.Position) {
			continue
		}
		dst.Sprites = append(dst.Sprites, SpriteInstance{
			Kind:     SpriteObject,
			Index:    i,
			Position: obj.Position,
			Depth:    obj.Position.Y,
			Sprite:   obj.Sprite,
		})
	}
	for i, z := range s.Zombies {
		if !visible(z.Position) {
			continue
		}
		col, row := z.SpriteOffset()
		dst.Sprites = append(dst.Sprites, SpriteInstance{
			Kind:     SpriteZombie,
			Index:    i,
			Position: z.Position,
			Column:   col,
			Row:      row,
			Depth:    z.Position.Y,
		})
	}
	col, row := s.Character.SpriteOffset()
	dst.Sprites = append(dst.Sprites, SpriteInstance{
		Kind:   SpriteCharacter,
		Column: col,
		Row:    row,
	})
	for i, b := range s.Bullets.Bullets() {
		if !b.Alive || !visible(b.Position) {
			continue
		}
		dst.Sprites = append(dst.Sprites, SpriteInstance{
			Kind:     SpriteBullet,
			Index:    i,
			Position: b.Position,
			Row:      b.Orientation.Row(),
			Depth:    b.Position.Y,
		})
	}

	sort.SliceStable(dst.Sprites, func(i, j int) bool {
		return dst.Sprites[i].Depth > dst.Sprites[j].Depth
	})

	dst.HUD = HUD{
		Tick:           s.Tick,
		GameSeconds:    s.GameSeconds(),
		ZombiesAlive:   s.AliveZombies(),
		ZombiesTotal:   len(s.Zombies),
		Kills:          s.Kills,
		Bullets:        s.Bullets.Len(),
		CameraDistance: proj.Distance,
		Stance:         s.Character.Stance.String(),
		Blocked:        s.Character.Blocked,
	}
}
