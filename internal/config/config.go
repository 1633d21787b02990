// Package config handles runtime configuration loading and management.
package config

// Config holds all runtime settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// PhysicsConfig holds the per-tick movement constants.
type PhysicsConfig struct {
	Gravity     float32 `yaml:"gravity"`      // pixels per tick while grounded
	JumpFrames  int     `yaml:"jump_frames"`  // ticks of lift per jump
	ScrollSpeed float32 `yaml:"scroll_speed"` // background pixels per tick
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	SFXVolume float64 `yaml:"sfx_volume"`
	Muted     bool    `yaml:"muted"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	JumpKey   string `yaml:"jump_key"` // input key name, e.g. "space"
	ShowDebug bool   `yaml:"show_debug"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Physics: PhysicsConfig{
			Gravity:     3,
			JumpFrames:  20,
			ScrollSpeed: 1,
		},
		Audio: AudioConfig{
			SFXVolume: 0.8,
			Muted:     false,
		},
		Game: GameConfig{
			JumpKey:   "space",
			ShowDebug: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
