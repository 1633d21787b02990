package sprite

import "testing"

func newTestSheet(dirMax, maxFrame int) *SheetSprite {
	return NewSheet(&fakeImage{w: 128, h: 96}, 0, 0, 32, 48, dirMax, maxFrame)
}

func TestAdvanceFrameCycle(t *testing.T) {
	// The wrap condition is strictly > MaxFrame, so with MaxFrame=4 the
	// cycle is 0,1,2,3,4 and six advances land where one does.
	once := newTestSheet(1, 4)
	once.AdvanceFrame()

	six := newTestSheet(1, 4)
	for i := 0; i < 6; i++ {
		six.AdvanceFrame()
	}

	if once.CurrentFrame != six.CurrentFrame {
		t.Errorf("6 advances gave frame %d, 1 advance gave %d; cycle length should be 5",
			six.CurrentFrame, once.CurrentFrame)
	}

	s := newTestSheet(1, 4)
	want := []int{1, 2, 3, 4, 0, 1}
	for i, w := range want {
		s.AdvanceFrame()
		if s.CurrentFrame != w {
			t.Fatalf("advance %d: frame %d, want %d", i+1, s.CurrentFrame, w)
		}
	}
}

func TestChangeDir(t *testing.T) {
	s := newTestSheet(3, 4)

	for d := 0; d <= 3; d++ {
		s.ChangeDir(d)
		if s.CurrentDir != d {
			t.Errorf("ChangeDir(%d): dir = %d", d, s.CurrentDir)
		}
	}

	s.ChangeDir(2)
	s.ChangeDir(4) // past DirMax: ignored
	if s.CurrentDir != 2 {
		t.Errorf("ChangeDir(4) changed dir to %d", s.CurrentDir)
	}
	s.ChangeDir(-1)
	if s.CurrentDir != 2 {
		t.Errorf("ChangeDir(-1) changed dir to %d", s.CurrentDir)
	}
}

func TestJumpCycle(t *testing.T) {
	s := newTestSheet(1, 3)
	s.CanJump = true
	s.Gravity = 0
	s.JumpMax = 10

	in := &fakeInput{}
	ctx := &Context{Input: in}

	s.Jump()
	if !s.Jumping {
		t.Fatal("Jump() did not start a jump")
	}
	if s.JumpCount != 10 {
		t.Fatalf("JumpCount = %d, want 10", s.JumpCount)
	}

	startY := s.Y
	for i := 0; i < 10; i++ {
		s.UpdateJump(ctx)
	}

	if s.Jumping {
		t.Error("still jumping after the countdown ran out")
	}
	if s.JumpCount != 0 {
		t.Errorf("JumpCount = %d, want 0", s.JumpCount)
	}
	// gravity 0 still lifts by 1 per tick
	if s.Y != startY-10 {
		t.Errorf("y = %v, want %v", s.Y, startY-10)
	}
	if in.released != 1 {
		t.Errorf("jump key released %d times, want 1", in.released)
	}
}

func TestJumpRequiresPermission(t *testing.T) {
	s := newTestSheet(1, 3)
	s.JumpMax = 10

	s.Jump() // CanJump false
	if s.Jumping {
		t.Error("jump started while CanJump is false")
	}

	s.CanJump = true
	s.Jump()
	count := s.JumpCount
	s.Jump() // already airborne: no re-seed
	if s.JumpCount != count {
		t.Error("Jump() while airborne re-seeded the countdown")
	}
}

func TestApplyGravity(t *testing.T) {
	s := newTestSheet(1, 3)
	s.Gravity = 3
	s.Y = 100

	s.ApplyGravity()
	s.ApplyGravity()
	if s.Y != 106 {
		t.Errorf("y = %v, want 106", s.Y)
	}
}

func TestSheetDrawSelectsCell(t *testing.T) {
	s := newTestSheet(1, 3)
	s.ChangeDir(1)
	s.AdvanceFrame()
	s.AdvanceFrame()

	r := &fakeRenderer{}
	if err := s.Draw(r); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(r.blits) != 1 {
		t.Fatalf("expected 1 blit, got %d", len(r.blits))
	}
	b := r.blits[0]
	if b.srcX != 64 || b.srcY != 48 {
		t.Errorf("source origin (%d,%d), want (64,48) for frame 2 dir 1", b.srcX, b.srcY)
	}
}
