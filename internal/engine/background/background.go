// Package background renders a scrolling background that wraps seamlessly.
// One tile is drawn at the accumulated scroll offset and a second copy one
// tile-dimension away in the travel direction fills the gap; once the
// offset reaches a full tile the pair is back where it started and the
// offset resets.
package background

import "github.com/Faultbox/spriterun/internal/engine/sprite"

// Background scrolls a single tile image across the screen.
type Background struct {
	// Offset of the primary tile from its home position.
	X, Y float32

	// Tile render size. |X| never exceeds UseWidth, |Y| never UseHeight.
	Width, Height       float32
	UseWidth, UseHeight float32

	Alpha   float32
	Visible bool

	// Advance gates scrolling; a paused background still draws.
	Advance bool

	Image sprite.Image
}

// New creates a background whose tile reads a w by h source region and
// renders at the same size.
func New(img sprite.Image, w, h float32) *Background {
	return &Background{
		Width:     w,
		Height:    h,
		UseWidth:  w,
		UseHeight: h,
		Alpha:     1,
		Visible:   true,
		Advance:   true,
		Image:     img,
	}
}

// Update accumulates the world scroll delta for this tick. The offset
// resets to zero exactly when its magnitude reaches one tile dimension,
// which is the moment the wrapped pair realigns with the home position.
func (b *Background) Update(dx, dy float32) {
	if !b.Advance {
		return
	}
	b.X += dx
	b.Y += dy
	if b.X <= -b.UseWidth || b.X >= b.UseWidth {
		b.X = 0
	}
	if b.Y <= -b.UseHeight || b.Y >= b.UseHeight {
		b.Y = 0
	}
}

// Draw renders the primary tile at the offset plus the secondary copies
// one tile-dimension away in the direction of travel.
func (b *Background) Draw(r sprite.Renderer) error {
	if !b.Visible {
		return nil
	}
	if err := b.drawTile(r, b.X, b.Y); err != nil {
		return err
	}
	if b.X != 0 {
		if err := b.drawTile(r, b.X+b.secondaryX(), b.Y); err != nil {
			return err
		}
	}
	if b.Y != 0 {
		if err := b.drawTile(r, b.X, b.Y+b.secondaryY()); err != nil {
			return err
		}
	}
	return nil
}

// secondaryX returns the horizontal displacement of the wrap partner:
// one tile toward the side the primary tile has scrolled away from.
func (b *Background) secondaryX() float32 {
	if b.X < 0 {
		return b.UseWidth
	}
	return -b.UseWidth
}

func (b *Background) secondaryY() float32 {
	if b.Y < 0 {
		return b.UseHeight
	}
	return -b.UseHeight
}

func (b *Background) drawTile(r sprite.Renderer, x, y float32) error {
	return r.Blit(b.Image,
		0, 0, int32(b.Width), int32(b.Height),
		x, y, b.UseWidth, b.UseHeight, b.Alpha)
}
