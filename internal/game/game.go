// Package game drives the per-tick runtime loop: feed input, advance the
// world clock, resolve movement against the collision lookahead, advance
// animations, then draw. All work runs on one thread in that fixed order.
package game

import (
	"fmt"
	"time"

	"github.com/Faultbox/spriterun/internal/config"
	"github.com/Faultbox/spriterun/internal/engine/audio"
	"github.com/Faultbox/spriterun/internal/engine/clock"
	"github.com/Faultbox/spriterun/internal/engine/input"
	"github.com/Faultbox/spriterun/internal/engine/render"
	"github.com/Faultbox/spriterun/internal/engine/sprite"
	"github.com/Faultbox/spriterun/internal/engine/window"
	"github.com/Faultbox/spriterun/internal/logger"
)

// Game owns the window, renderer and the process-wide input and clock
// state, and runs the main loop over a Scene.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *render.Renderer
	audio    *audio.Trigger
	input    *input.State
	clock    *clock.Clock
	scene    *Scene
	running  bool
}

// New creates the game and its platform resources. Audio failure is
// logged but not fatal; the runtime plays on silently.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		input: input.New(),
		clock: clock.New(),
	}

	if cfg.Game.JumpKey != "" {
		g.input.SetJumpKey(input.Key(cfg.Game.JumpKey))
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "spriterun",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	g.renderer, err = render.New(g.window.SDLWindow(), cfg.Graphics.VSync)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	g.audio = audio.New()
	g.audio.SetVolume(cfg.Audio.SFXVolume)
	g.audio.SetMuted(cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		logger.Sugar.Warnw("audio unavailable", "error", err)
		g.audio = nil
	}

	logger.Sugar.Infow("game initialized",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)
	return g, nil
}

// Input returns the process-wide input tracker.
func (g *Game) Input() *input.State {
	return g.input
}

// Clock returns the world clock.
func (g *Game) Clock() *clock.Clock {
	return g.clock
}

// Renderer returns the renderer, for texture creation during scene setup.
func (g *Game) Renderer() *render.Renderer {
	return g.renderer
}

// Audio returns the sound trigger, or nil if audio failed to initialize.
func (g *Game) Audio() *audio.Trigger {
	return g.audio
}

// SetScene installs the scene the loop runs.
func (g *Game) SetScene(s *Scene) {
	g.scene = s
}

// Run executes the main loop until quit is requested.
func (g *Game) Run() error {
	if g.scene == nil {
		return fmt.Errorf("no scene set")
	}
	g.running = true

	var frameDuration time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameDuration = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	logger.Sugar.Info("starting game loop")

	for g.running {
		frameStart := time.Now()

		if input.Poll(g.input) {
			g.running = false
			break
		}
		if g.input.Pressed(input.KeyEscape) {
			g.running = false
			break
		}

		g.tick()

		if err := g.draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		g.renderer.Present()

		if frameDuration > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameDuration {
				time.Sleep(frameDuration - elapsed)
			}
		}
	}

	return nil
}

// Stop requests loop exit after the current frame.
func (g *Game) Stop() {
	g.running = false
}

// tick advances the world by one frame. The order is a contract: jump and
// gravity move the player before the lookahead checks run, and positions
// commit before animations advance, so entities never tunnel through
// solids within a frame.
func (g *Game) tick() {
	g.clock.Tick()

	w, h := g.window.GetSize()
	ctx := &sprite.Context{
		ScrollX: -g.cfg.Physics.ScrollSpeed,
		ScreenW: float32(w),
		ScreenH: float32(h),
		Input:   g.input,
	}

	if g.scene.Background != nil {
		g.scene.Background.Update(ctx.ScrollX, ctx.ScrollY)
	}
	if g.scene.Player != nil {
		wasJumping := g.scene.Player.Jumping
		g.scene.Player.Update(g.input, g.scene.Solids, ctx)
		if !wasJumping && g.scene.Player.Jumping {
			g.playJumpSound()
		}
	}
	for _, p := range g.scene.Props {
		p.Update(ctx)
	}

	for _, line := range g.clock.FlushDebug() {
		if g.cfg.Game.ShowDebug {
			logger.Sugar.Debugw(line, "frame", g.clock.Frame())
		}
	}
}

// playJumpSound fires the scene's jump sample, if both it and audio exist.
func (g *Game) playJumpSound() {
	if g.audio == nil || len(g.scene.JumpSound) == 0 {
		return
	}
	if err := g.audio.Play(g.scene.JumpSound); err != nil {
		logger.Sugar.Debugw("jump sound failed", "error", err)
	}
}

// draw renders the frame back to front.
func (g *Game) draw() error {
	if err := g.renderer.Clear(16, 16, 24); err != nil {
		return err
	}
	return g.scene.Draw(g.renderer)
}

// Close cleans up platform resources.
func (g *Game) Close() {
	logger.Sugar.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
