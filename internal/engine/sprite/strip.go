package sprite

// ImageStripSprite animates over an ordered list of whole images rather
// than regions of one sheet.
type ImageStripSprite struct {
	Entity

	Images       []Image
	CurrentFrame int
}

// NewStrip creates an image-strip sprite rendering at w by h. The first
// image's size seeds the source rectangle.
func NewStrip(images []Image, x, y, w, h float32) *ImageStripSprite {
	s := &ImageStripSprite{
		Entity: Entity{
			X:         x,
			Y:         y,
			UseWidth:  w,
			UseHeight: h,
			Alpha:     1,
			Visible:   true,
		},
		Images: images,
	}
	if len(images) > 0 {
		iw, ih := images[0].Size()
		s.Width = float32(iw)
		s.Height = float32(ih)
		s.Image = images[0]
	}
	return s
}

// AdvanceFrame steps to the next image. The wrap fires one slot early:
// the final image in the strip is never selected, so strips are authored
// with a padding image in the last slot.
func (s *ImageStripSprite) AdvanceFrame() {
	if len(s.Images) == 0 {
		return
	}
	s.CurrentFrame++
	if s.CurrentFrame >= len(s.Images)-1 {
		s.CurrentFrame = 0
	}
}

// Update applies the per-tick background drift when enabled.
func (s *ImageStripSprite) Update(ctx *Context) {
	if s.MoveWithBackground {
		s.scrollWrap(ctx)
	}
}

// Draw renders the whole current image into the render rectangle.
func (s *ImageStripSprite) Draw(r Renderer) error {
	if !s.Visible || len(s.Images) == 0 {
		return nil
	}
	img := s.Images[s.CurrentFrame]
	w, h := img.Size()
	return r.Blit(img, 0, 0, w, h, s.X, s.Y, s.UseWidth, s.UseHeight, s.Alpha)
}
