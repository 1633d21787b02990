package sprite

import (
	"errors"
	"fmt"
)

// ErrFrameOutOfRange is returned when a row or frame index does not name a
// valid frame.
var ErrFrameOutOfRange = errors.New("frame index out of range")

// Frame is one independent sub-rectangle of a variable-frame sheet.
type Frame struct {
	X, Y          float32
	Width, Height float32
}

// FrameSheetSprite animates over a sheet whose frames have independent
// positions and sizes, organised as an ordered sequence of rows. The
// (CurrentRow, CurrentFrame) pair always indexes a valid frame.
type FrameSheetSprite struct {
	Entity

	rows         [][]Frame
	CurrentRow   int
	CurrentFrame int
}

// NewFrameSheet creates a variable-frame sprite. Every row must hold at
// least one frame, otherwise the advance invariant cannot hold.
func NewFrameSheet(img Image, x, y float32, rows [][]Frame) (*FrameSheetSprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("frame sheet: no rows: %w", ErrFrameOutOfRange)
	}
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("frame sheet: row %d is empty: %w", i, ErrFrameOutOfRange)
		}
	}
	first := rows[0][0]
	return &FrameSheetSprite{
		Entity: Entity{
			X:         x,
			Y:         y,
			Width:     first.Width,
			Height:    first.Height,
			UseWidth:  first.Width,
			UseHeight: first.Height,
			Alpha:     1,
			Visible:   true,
			Image:     img,
		},
		rows: rows,
	}, nil
}

// AdvanceFrame moves to the next frame in the current row; at the row end
// it resets the frame and advances the row, wrapping the last row back to
// row zero.
func (s *FrameSheetSprite) AdvanceFrame() {
	s.CurrentFrame++
	if s.CurrentFrame >= len(s.rows[s.CurrentRow]) {
		s.CurrentFrame = 0
		s.CurrentRow++
		if s.CurrentRow >= len(s.rows) {
			s.CurrentRow = 0
		}
	}
}

// SetFrame jumps directly to (row, frame). Unlike AdvanceFrame it can name
// arbitrary positions, so the indices are validated.
func (s *FrameSheetSprite) SetFrame(row, frame int) error {
	if row < 0 || row >= len(s.rows) {
		return fmt.Errorf("frame sheet: row %d of %d: %w", row, len(s.rows), ErrFrameOutOfRange)
	}
	if frame < 0 || frame >= len(s.rows[row]) {
		return fmt.Errorf("frame sheet: frame %d of %d in row %d: %w",
			frame, len(s.rows[row]), row, ErrFrameOutOfRange)
	}
	s.CurrentRow = row
	s.CurrentFrame = frame
	return nil
}

// Frame returns the sub-rectangle currently selected.
func (s *FrameSheetSprite) Frame() Frame {
	return s.rows[s.CurrentRow][s.CurrentFrame]
}

// Rows returns the number of rows in the sheet.
func (s *FrameSheetSprite) Rows() int {
	return len(s.rows)
}

// RowLen returns the number of frames in row, or an error for a bad index.
func (s *FrameSheetSprite) RowLen(row int) (int, error) {
	if row < 0 || row >= len(s.rows) {
		return 0, fmt.Errorf("frame sheet: row %d of %d: %w", row, len(s.rows), ErrFrameOutOfRange)
	}
	return len(s.rows[row]), nil
}

// Update applies the per-tick background drift when enabled.
func (s *FrameSheetSprite) Update(ctx *Context) {
	if s.MoveWithBackground {
		s.scrollWrap(ctx)
	}
}

// Draw renders the current frame's sub-rectangle through r.
func (s *FrameSheetSprite) Draw(r Renderer) error {
	if !s.Visible {
		return nil
	}
	f := s.Frame()
	return r.Blit(s.Image,
		int32(f.X), int32(f.Y), int32(f.Width), int32(f.Height),
		s.X, s.Y, s.UseWidth, s.UseHeight, s.Alpha)
}
