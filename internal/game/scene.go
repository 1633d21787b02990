package game

import (
	"github.com/Faultbox/spriterun/internal/engine/background"
	"github.com/Faultbox/spriterun/internal/engine/sprite"
)

// Prop is a scene object that ticks and draws but takes no input: clouds,
// pickups, decorations. All sprite variants satisfy it.
type Prop interface {
	Update(*sprite.Context)
	Draw(sprite.Renderer) error
}

// Scene holds the drawable world: a scrolling background, static solid
// geometry the player collides with, ambient props, and the player.
type Scene struct {
	Background *background.Background
	Player     *Player
	Solids     []*sprite.Sprite
	Props      []Prop

	// JumpSound is an optional WAV sample triggered when a jump starts.
	JumpSound []byte
}

// Draw renders the scene back to front: background, solids, props, player.
func (s *Scene) Draw(r sprite.Renderer) error {
	if s.Background != nil {
		if err := s.Background.Draw(r); err != nil {
			return err
		}
	}
	for _, solid := range s.Solids {
		if err := solid.Draw(r); err != nil {
			return err
		}
	}
	for _, p := range s.Props {
		if err := p.Draw(r); err != nil {
			return err
		}
	}
	if s.Player != nil {
		if err := s.Player.Draw(r); err != nil {
			return err
		}
	}
	return nil
}
