package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	World     WorldConfig     `yaml:"world"`
	Camera    CameraConfig    `yaml:"camera"`
	Timing    TimingConfig    `yaml:"timing"`
	ZombieAI  ZombieAIConfig  `yaml:"zombie_ai"`
	Character CharacterConfig `yaml:"character"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Animation AnimationConfig `yaml:"animation"`
	Storage   StorageConfig   `yaml:"storage"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

// WorldConfig describes the tile grid. Width/height from the map file win
// over TilesW/TilesH when a map is loaded.
type WorldConfig struct {
	TilesW      int     `yaml:"tiles_w"`
	TilesH      int     `yaml:"tiles_h"`
	TileSize    float64 `yaml:"tile_size"`
	TileYOffset float64 `yaml:"tile_y_offset"`
	MapFile     string  `yaml:"map_file"`
	TilesFile   string  `yaml:"tiles_file"`
}

type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	ZoomStep    float64 `yaml:"zoom_step"`
}

// TimingConfig holds the fixed-timestep gate and animation cooldowns (milliseconds).
type TimingConfig struct {
	TickMillis             int `yaml:"tick_ms"`
	TargetTPS              int `yaml:"target_tps"`
	RunCycleMillis         int `yaml:"run_cycle_ms"`
	FireCycleMillis        int `yaml:"fire_cycle_ms"`
	ZombieCycleMillis      int `yaml:"zombie_cycle_ms"`
	DecisionIntervalSecond int `yaml:"decision_interval_seconds"`
}

type ZombieAIConfig struct {
	AggroDistance       float64 `yaml:"aggro_distance"`
	RunSpeedMultiplier  float64 `yaml:"run_speed_multiplier"`
	WalkSpeedMultiplier float64 `yaml:"walk_speed_multiplier"`
	WanderRadius        float64 `yaml:"wander_radius"`
	CriticalDamage      float64 `yaml:"critical_damage"`
	HitBoxSize          float64 `yaml:"hit_box_size"`
}

type CharacterConfig struct {
	WalkSpeed  float64 `yaml:"walk_speed"`
	RunSpeed   float64 `yaml:"run_speed"`
	HitBoxSize float64 `yaml:"hit_box_size"`
}

type BulletConfig struct {
	Speed         float64 `yaml:"speed"`
	LifetimeTicks int     `yaml:"lifetime_ticks"`
	Damage        float64 `yaml:"damage"`
	HitBoxSize    float64 `yaml:"hit_box_size"`
}

// StanceFrames locates one stance's animation strip in a sprite sheet.
type StanceFrames struct {
	Column int `yaml:"column"`
	Frames int `yaml:"frames"`
}

type ZombieAnimationConfig struct {
	Still         StanceFrames `yaml:"still"`
	Walking       StanceFrames `yaml:"walking"`
	Running       StanceFrames `yaml:"running"`
	NormalDeath   StanceFrames `yaml:"normal_death"`
	CriticalDeath StanceFrames `yaml:"critical_death"`
}

type CharacterAnimationConfig struct {
	Still   StanceFrames `yaml:"still"`
	Walking StanceFrames `yaml:"walking"`
	Running StanceFrames `yaml:"running"`
	Firing  StanceFrames `yaml:"firing"`
}

type AnimationConfig struct {
	CellSize  int                      `yaml:"cell_size"`
	Zombie    ZombieAnimationConfig    `yaml:"zombie"`
	Character CharacterAnimationConfig `yaml:"character"`
}

type StorageConfig struct {
	AppName string `yaml:"app_name"`
}

var GlobalConfig *Config

// Default returns the built-in configuration. config.yaml mirrors these values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "Iso Zombie",
			Resizable:    true,
		},
		World: WorldConfig{
			TilesW:      64,
			TilesH:      64,
			TileSize:    64,
			TileYOffset: 32,
			MapFile:     "assets/map.txt",
			TilesFile:   "assets/tiles.yaml",
		},
		Camera: CameraConfig{
			Distance:    360,
			MinDistance: 180,
			MaxDistance: 900,
			ZoomStep:    30,
		},
		Timing: TimingConfig{
			TickMillis:             16,
			TargetTPS:              120,
			RunCycleMillis:         20,
			FireCycleMillis:        60,
			ZombieCycleMillis:      20,
			DecisionIntervalSecond: 2,
		},
		ZombieAI: ZombieAIConfig{
			AggroDistance:       400,
			RunSpeedMultiplier:  2.4,
			WalkSpeedMultiplier: 1.2,
			WanderRadius:        256,
			CriticalDamage:      0.75,
			HitBoxSize:          40,
		},
		Character: CharacterConfig{
			WalkSpeed:  3,
			RunSpeed:   5,
			HitBoxSize: 32,
		},
		Bullets: BulletConfig{
			Speed:         14,
			LifetimeTicks: 60,
			Damage:        0.34,
			HitBoxSize:    8,
		},
		Animation: AnimationConfig{
			CellSize: 64,
			Zombie: ZombieAnimationConfig{
				Still:         StanceFrames{Column: 0, Frames: 4},
				Walking:       StanceFrames{Column: 4, Frames: 8},
				Running:       StanceFrames{Column: 12, Frames: 8},
				NormalDeath:   StanceFrames{Column: 20, Frames: 6},
				CriticalDeath: StanceFrames{Column: 26, Frames: 8},
			},
			Character: CharacterAnimationConfig{
				Still:   StanceFrames{Column: 0, Frames: 4},
				Walking: StanceFrames{Column: 4, Frames: 8},
				Running: StanceFrames{Column: 12, Frames: 8},
				Firing:  StanceFrames{Column: 20, Frames: 4},
			},
		},
		Storage: StorageConfig{
			AppName: "isozombie",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Keys missing from the
// file keep their Default() values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.World.TilesW < 2 || c.World.TilesH < 2 {
		return fmt.Errorf("world grid must be at least 2x2, got %dx%d", c.World.TilesW, c.World.TilesH)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world tile_size must be positive, got %v", c.World.TileSize)
	}
	if c.Timing.TickMillis <= 0 {
		return fmt.Errorf("timing tick_ms must be positive, got %d", c.Timing.TickMillis)
	}
	if c.Camera.MinDistance > c.Camera.MaxDistance {
		return fmt.Errorf("camera min_distance %v exceeds max_distance %v", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	return nil
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetAspect returns the screen aspect ratio (width / height).
func (c *Config) GetAspect() float64 {
	if c.Display.ScreenHeight <= 0 {
		return 1
	}
	return float64(c.Display.ScreenWidth) / float64(c.Display.ScreenHeight)
}

func (c *Config) GetTPS() int {
	if c.Timing.TargetTPS <= 0 {
		return 60
	}
	return c.Timing.TargetTPS
}

// GetTickInterval is the fixed-timestep threshold.
func (c *Config) GetTickInterval() time.Duration {
	return millis(c.Timing.TickMillis, 16)
}

func (c *Config) GetRunCycle() time.Duration {
	return millis(c.Timing.RunCycleMillis, 20)
}

func (c *Config) GetFireCycle() time.Duration {
	return millis(c.Timing.FireCycleMillis, 60)
}

func (c *Config) GetZombieCycle() time.Duration {
	return millis(c.Timing.ZombieCycleMillis, 20)
}

// GetDecisionInterval is the idle-wander decision period in whole seconds.
func (c *Config) GetDecisionInterval() int64 {
	if c.Timing.DecisionIntervalSecond <= 0 {
		return 2
	}
	return int64(c.Timing.DecisionIntervalSecond)
}

// ClampCameraDistance keeps a zoom value inside the configured range.
func (c *Config) ClampCameraDistance(d float64) float64 {
	if c.Camera.MinDistance > 0 && d < c.Camera.MinDistance {
		return c.Camera.MinDistance
	}
	if c.Camera.MaxDistance > 0 && d > c.Camera.MaxDistance {
		return c.Camera.MaxDistance
	}
	return d
}

func millis(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Millisecond
}
