package game

import (
	"github.com/Faultbox/spriterun/internal/engine/input"
	"github.com/Faultbox/spriterun/internal/engine/sprite"
)

// Direction rows of the player sheet.
const (
	DirRight = 0
	DirLeft  = 1
)

// Player is the input-driven actor: a sheet sprite plus animation pacing.
// The walk speed lives in the sprite's stored DX velocity; movement code
// reads it and commits the step after the lookahead passes.
type Player struct {
	*sprite.SheetSprite

	// FrameDelay is the number of ticks each animation frame is held.
	FrameDelay int

	animTick int
}

// NewPlayer wraps a sheet sprite as the controlled player walking at
// speed pixels per tick.
func NewPlayer(s *sprite.SheetSprite, speed float32) *Player {
	s.DX = speed
	return &Player{
		SheetSprite: s,
		FrameDelay:  5,
	}
}

// Update runs one tick of player movement in the contract order: jump and
// gravity first, then the directional lookahead, then the committed step.
func (p *Player) Update(in *input.State, solids []*sprite.Sprite, ctx *sprite.Context) {
	if in.JumpPressed() {
		p.Jump()
	}

	if p.Jumping {
		p.UpdateJump(ctx)
	} else {
		grounded := false
		for _, s := range solids {
			if p.CheckBottomCollision(&s.Entity) {
				grounded = true
			}
		}
		if !grounded {
			p.ApplyGravity()
		}
		p.CanJump = grounded
	}

	moving := false
	switch {
	case in.Pressed(input.KeyRight):
		p.ChangeDir(DirRight)
		if !p.blockedRight(solids) {
			p.X += p.DX
		}
		moving = true
	case in.Pressed(input.KeyLeft):
		p.ChangeDir(DirLeft)
		if !p.blockedLeft(solids) {
			p.X -= p.DX
		}
		moving = true
	}

	if moving {
		p.animTick++
		if p.animTick >= p.FrameDelay {
			p.animTick = 0
			p.AdvanceFrame()
		}
	} else {
		p.CurrentFrame = 0
		p.animTick = 0
	}
}

func (p *Player) blockedRight(solids []*sprite.Sprite) bool {
	for _, s := range solids {
		if p.CheckRightCollision(&s.Entity) {
			return true
		}
	}
	return false
}

func (p *Player) blockedLeft(solids []*sprite.Sprite) bool {
	for _, s := range solids {
		if p.CheckLeftCollision(&s.Entity) {
			return true
		}
	}
	return false
}
