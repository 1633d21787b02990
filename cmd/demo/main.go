// Package main runs a small platformer scene demonstrating the runtime:
// a scrolling background, static platforms, drifting props, and a player
// that walks and jumps. All textures are generated solid fills, so no
// asset files are needed.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/spriterun/internal/assets"
	"github.com/Faultbox/spriterun/internal/config"
	"github.com/Faultbox/spriterun/internal/engine/background"
	"github.com/Faultbox/spriterun/internal/engine/render"
	"github.com/Faultbox/spriterun/internal/engine/sprite"
	"github.com/Faultbox/spriterun/internal/game"
	"github.com/Faultbox/spriterun/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Info("=== spriterun demo ===")

	g, err := game.New(cfg)
	if err != nil {
		logger.Sugar.Errorw("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	scene, err := buildScene(g.Renderer(), cfg)
	if err != nil {
		logger.Sugar.Errorw("failed to build scene", "error", err)
		os.Exit(1)
	}
	g.SetScene(scene)

	if err := g.Run(); err != nil {
		logger.Sugar.Errorw("game error", "error", err)
		os.Exit(1)
	}

	logger.Sugar.Info("game closed normally")
}

// buildScene assembles the demo world from generated textures.
func buildScene(r *render.Renderer, cfg *config.Config) (*game.Scene, error) {
	screenW := float32(cfg.Graphics.Width)
	screenH := float32(cfg.Graphics.Height)

	skyTex, err := r.SolidTexture(cfg.Graphics.Width, cfg.Graphics.Height, 40, 60, 110, 255)
	if err != nil {
		return nil, err
	}
	bg := background.New(skyTex, screenW, screenH)

	groundTex, err := r.SolidTexture(cfg.Graphics.Width, 40, 70, 50, 30, 255)
	if err != nil {
		return nil, err
	}
	ground := sprite.New(groundTex, 0, screenH-40, screenW, 40)

	platformTex, err := r.SolidTexture(120, 20, 90, 90, 100, 255)
	if err != nil {
		return nil, err
	}
	platform := sprite.New(platformTex, screenW/2-60, screenH-180, 120, 20)

	// A drifting cloud that moves with the background and wraps around
	// the screen edges.
	cloudTex, err := r.SolidTexture(80, 30, 235, 235, 245, 255)
	if err != nil {
		return nil, err
	}
	cloud := sprite.New(cloudTex, screenW/3, 80, 80, 30)
	cloud.Alpha = 0.8
	cloud.MoveWithBackground = true

	// Player sheet: 2 direction rows x 4 walk frames of 32x48 cells.
	playerTex, err := r.SolidTexture(4*32, 2*48, 220, 80, 60, 255)
	if err != nil {
		return nil, err
	}
	sheet := sprite.NewSheet(playerTex, 60, screenH-40-48, 32, 48, 1, 3)
	sheet.Gravity = cfg.Physics.Gravity
	sheet.JumpMax = cfg.Physics.JumpFrames

	scene := &game.Scene{
		Background: bg,
		Player:     game.NewPlayer(sheet, 3),
		Solids:     []*sprite.Sprite{ground, platform},
		Props:      []game.Prop{cloud},
	}

	// Optional jump sound; the demo stays silent if no assets directory
	// is shipped alongside it.
	mgr := assets.NewManager("assets")
	if data, err := mgr.Load("jump.wav"); err == nil {
		scene.JumpSound = data
	}

	return scene, nil
}
