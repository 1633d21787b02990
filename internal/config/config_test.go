package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Physics.Gravity != 3 {
		t.Errorf("expected gravity 3, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpFrames != 20 {
		t.Errorf("expected 20 jump frames, got %d", cfg.Physics.JumpFrames)
	}
	if cfg.Physics.ScrollSpeed != 1 {
		t.Errorf("expected scroll speed 1, got %v", cfg.Physics.ScrollSpeed)
	}

	if cfg.Audio.SFXVolume != 0.8 {
		t.Errorf("expected sfx volume 0.8, got %f", cfg.Audio.SFXVolume)
	}
	if cfg.Audio.Muted {
		t.Error("expected muted to be false by default")
	}

	if cfg.Game.JumpKey != "space" {
		t.Errorf("expected jump key 'space', got %s", cfg.Game.JumpKey)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 720
  fullscreen: true
  vsync: false
  fps_limit: 144

physics:
  gravity: 5
  jump_frames: 12
  scroll_speed: 2.5

audio:
  sfx_volume: 0.5
  muted: true

game:
  jump_key: w
  show_debug: true

logging:
  level: debug
  log_file: run.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("graphics %dx%d, want 1280x720", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("fullscreen not loaded")
	}
	if cfg.Graphics.VSync {
		t.Error("vsync override not loaded")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("fps limit %d, want 144", cfg.Graphics.FPSLimit)
	}

	if cfg.Physics.Gravity != 5 {
		t.Errorf("gravity %v, want 5", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpFrames != 12 {
		t.Errorf("jump frames %d, want 12", cfg.Physics.JumpFrames)
	}
	if cfg.Physics.ScrollSpeed != 2.5 {
		t.Errorf("scroll speed %v, want 2.5", cfg.Physics.ScrollSpeed)
	}

	if cfg.Audio.SFXVolume != 0.5 || !cfg.Audio.Muted {
		t.Errorf("audio %+v not loaded", cfg.Audio)
	}

	if cfg.Game.JumpKey != "w" || !cfg.Game.ShowDebug {
		t.Errorf("game %+v not loaded", cfg.Game)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "run.log" {
		t.Errorf("logging %+v not loaded", cfg.Logging)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
physics:
  gravity: 7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Physics.Gravity != 7 {
		t.Errorf("gravity %v, want 7", cfg.Physics.Gravity)
	}
	// untouched sections keep their defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("width %d, want default 800", cfg.Graphics.Width)
	}
	if cfg.Game.JumpKey != "space" {
		t.Errorf("jump key %s, want default space", cfg.Game.JumpKey)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Physics.JumpFrames = 30

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Graphics.Width != 1024 {
		t.Errorf("width %d after round trip, want 1024", loaded.Graphics.Width)
	}
	if loaded.Physics.JumpFrames != 30 {
		t.Errorf("jump frames %d after round trip, want 30", loaded.Physics.JumpFrames)
	}
}
