package sprite

// Sprite is a static drawable backed by a fixed region of a source image.
type Sprite struct {
	Entity
}

// New creates a sprite that reads a w by h region of img and renders it at
// the same size. Adjust UseWidth/UseHeight afterwards to scale.
func New(img Image, x, y, w, h float32) *Sprite {
	return &Sprite{
		Entity: Entity{
			X:         x,
			Y:         y,
			Width:     w,
			Height:    h,
			UseWidth:  w,
			UseHeight: h,
			Alpha:     1,
			Visible:   true,
			Image:     img,
		},
	}
}

// Update advances the sprite by one tick. Sprites flagged with
// MoveWithBackground drift by the world scroll delta and wrap around the
// horizontal screen edges.
func (s *Sprite) Update(ctx *Context) {
	if s.MoveWithBackground {
		s.scrollWrap(ctx)
	}
}

// Draw renders the sprite through r. Invisible sprites draw nothing.
func (s *Sprite) Draw(r Renderer) error {
	if !s.Visible {
		return nil
	}
	return r.Blit(s.Image,
		0, 0, int32(s.Width), int32(s.Height),
		s.X, s.Y, s.UseWidth, s.UseHeight, s.Alpha)
}
