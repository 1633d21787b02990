// Package sprite implements the drawable entity variants of the runtime:
// static sprites, grid spritesheets, variable-frame spritesheets, and
// image-strip sprites. Entities own their position and animation state;
// actual pixel blitting is delegated to a Renderer supplied by the host.
package sprite

import "github.com/Faultbox/spriterun/internal/engine/collision"

// Image is a source picture the renderer can blit from.
type Image interface {
	Size() (w, h int32)
}

// Renderer blits a sub-rectangle of a source image to a destination
// rectangle with alpha compositing. Implemented by the SDL renderer;
// tests substitute a recorder.
type Renderer interface {
	Blit(img Image, srcX, srcY, srcW, srcH int32, dstX, dstY, dstW, dstH float32, alpha float32) error
}

// JumpInput is the slice of input state the jump machine touches. Ending a
// jump releases the jump key, so a held key does not immediately re-trigger.
type JumpInput interface {
	ReleaseJump()
}

// Context carries the per-tick world state entities read during Update.
// The host builds one per frame instead of entities reaching for globals.
type Context struct {
	ScrollX float32 // world scroll delta this tick
	ScrollY float32
	ScreenW float32
	ScreenH float32
	Input   JumpInput
}

// Entity holds the state shared by every sprite variant.
type Entity struct {
	X, Y float32

	// Source rectangle: the region read from the source image.
	Width  float32
	Height float32

	// Render rectangle: the size drawn to the output surface.
	UseWidth  float32
	UseHeight float32

	// Stored velocity. The core never applies it; movement code reads it,
	// runs the lookahead checks, then commits the step itself.
	DX, DY float32

	Alpha   float32
	Visible bool

	// Collided is sticky: collision checks set it and never clear it.
	// Call ResetCollision for a fresh per-frame baseline.
	Collided bool

	MoveWithBackground bool

	Image Image
}

// Bounds implements collision.Box.
func (e *Entity) Bounds() (x, y, w, h float32) {
	return e.X, e.Y, e.UseWidth, e.UseHeight
}

// MarkCollided implements collision.Box.
func (e *Entity) MarkCollided() {
	e.Collided = true
}

// ResetCollision clears the sticky collision flag.
func (e *Entity) ResetCollision() {
	e.Collided = false
}

// CheckCollision reports whether this entity overlaps other.
func (e *Entity) CheckCollision(other collision.Box) bool {
	return collision.Overlap(e, other)
}

// CheckBottomCollision reports whether a one-pixel step down would hit other.
func (e *Entity) CheckBottomCollision(other collision.Box) bool {
	return collision.BottomCollision(e, other)
}

// CheckTopCollision reports whether a one-pixel step up would hit other.
func (e *Entity) CheckTopCollision(other collision.Box) bool {
	return collision.TopCollision(e, other)
}

// CheckLeftCollision reports whether a one-pixel step left would hit other.
func (e *Entity) CheckLeftCollision(other collision.Box) bool {
	return collision.LeftCollision(e, other)
}

// CheckRightCollision reports whether a one-pixel step right would hit other.
func (e *Entity) CheckRightCollision(other collision.Box) bool {
	return collision.RightCollision(e, other)
}

// SetPosition moves the entity to the given coordinates.
func (e *Entity) SetPosition(x, y float32) {
	e.X = x
	e.Y = y
}

// scrollWrap applies the world scroll delta and wraps the entity around the
// horizontal screen edges, used by variants that move with the background.
func (e *Entity) scrollWrap(ctx *Context) {
	e.X += ctx.ScrollX
	e.Y += ctx.ScrollY
	if e.X < -e.UseWidth {
		e.X = ctx.ScreenW
	}
	if e.X > ctx.ScreenW {
		e.X = -e.UseWidth
	}
}
