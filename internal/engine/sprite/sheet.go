package sprite

// SheetSprite animates over a row/column spritesheet with uniform frame
// size. Rows select the facing direction, columns the animation frame. It
// also owns the jump state machine used for platformer-style movement.
type SheetSprite struct {
	Entity

	CurrentDir int // row, 0..DirMax
	DirMax     int

	CurrentFrame int // column, 0..MaxFrame
	MaxFrame     int

	// Jump state. Gravity is the per-tick fall speed; a running jump lifts
	// the sprite by Gravity+1 per tick so it outpaces the fall.
	CanJump   bool
	Jumping   bool
	JumpCount int
	JumpMax   int
	Gravity   float32
}

// NewSheet creates a spritesheet sprite with frameW by frameH cells,
// dirMax+1 direction rows and maxFrame+1 animation columns.
func NewSheet(img Image, x, y, frameW, frameH float32, dirMax, maxFrame int) *SheetSprite {
	return &SheetSprite{
		Entity: Entity{
			X:         x,
			Y:         y,
			Width:     frameW,
			Height:    frameH,
			UseWidth:  frameW,
			UseHeight: frameH,
			Alpha:     1,
			Visible:   true,
			Image:     img,
		},
		DirMax:   dirMax,
		MaxFrame: maxFrame,
	}
}

// AdvanceFrame steps the animation one frame forward. The wrap triggers
// only once the index exceeds MaxFrame: a full cycle is MaxFrame+1
// frames long and the MaxFrame column is part of it.
func (s *SheetSprite) AdvanceFrame() {
	s.CurrentFrame++
	if s.CurrentFrame > s.MaxFrame {
		s.CurrentFrame = 0
	}
}

// ChangeDir switches the facing direction. Out-of-range values are
// ignored, keeping the current direction.
func (s *SheetSprite) ChangeDir(dir int) {
	if dir < 0 || dir > s.DirMax {
		return
	}
	s.CurrentDir = dir
}

// Jump starts a jump if the sprite is allowed to and is not already
// airborne. The countdown is seeded with JumpMax ticks of lift.
func (s *SheetSprite) Jump() {
	if !s.CanJump || s.Jumping {
		return
	}
	s.Jumping = true
	s.JumpCount = s.JumpMax
}

// UpdateJump advances the jump by one tick: lift the sprite and burn one
// count, ending the jump when the countdown runs out. Call once per tick
// before the collision lookahead; ApplyGravity must only run while
// grounded or the two compound.
func (s *SheetSprite) UpdateJump(ctx *Context) {
	if !s.Jumping {
		return
	}
	s.Y -= s.Gravity + 1
	s.JumpCount--
	if s.JumpCount <= 0 {
		s.StopJump(ctx)
	}
}

// StopJump returns the sprite to the ground state and releases the host's
// jump key so a held key does not chain into another jump.
func (s *SheetSprite) StopJump(ctx *Context) {
	s.Jumping = false
	s.JumpCount = 0
	if ctx != nil && ctx.Input != nil {
		ctx.Input.ReleaseJump()
	}
}

// ApplyGravity pulls the sprite down by one tick of gravity. It is
// unconditional; the caller decides when gravity applies.
func (s *SheetSprite) ApplyGravity() {
	s.Y += s.Gravity
}

// Update applies the per-tick background drift for sheet sprites that
// move with the world.
func (s *SheetSprite) Update(ctx *Context) {
	if s.MoveWithBackground {
		s.scrollWrap(ctx)
	}
}

// Draw renders the current direction/frame cell through r.
func (s *SheetSprite) Draw(r Renderer) error {
	if !s.Visible {
		return nil
	}
	srcX := int32(float32(s.CurrentFrame) * s.Width)
	srcY := int32(float32(s.CurrentDir) * s.Height)
	return r.Blit(s.Image,
		srcX, srcY, int32(s.Width), int32(s.Height),
		s.X, s.Y, s.UseWidth, s.UseHeight, s.Alpha)
}
