package collision

import "testing"

type box struct {
	x, y, w, h float32
	collided   bool
}

func (b *box) Bounds() (float32, float32, float32, float32) {
	return b.x, b.y, b.w, b.h
}

func (b *box) MarkCollided() {
	b.collided = true
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b box
		want bool
	}{
		{"overlapping", box{x: 0, y: 0, w: 10, h: 10}, box{x: 5, y: 5, w: 10, h: 10}, true},
		{"contained", box{x: 2, y: 2, w: 4, h: 4}, box{x: 0, y: 0, w: 10, h: 10}, true},
		{"separate", box{x: 0, y: 0, w: 10, h: 10}, box{x: 20, y: 0, w: 10, h: 10}, false},
		{"touching edges", box{x: 0, y: 0, w: 10, h: 10}, box{x: 10, y: 0, w: 10, h: 10}, false},
		{"touching corners", box{x: 0, y: 0, w: 10, h: 10}, box{x: 10, y: 10, w: 10, h: 10}, false},
		{"zero width a", box{x: 0, y: 0, w: 0, h: 10}, box{x: 0, y: 0, w: 10, h: 10}, false},
		{"zero height b", box{x: 0, y: 0, w: 10, h: 10}, box{x: 0, y: 0, w: 10, h: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			if got := Overlap(&a, &b); got != tt.want {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapSymmetry(t *testing.T) {
	boxes := []box{
		{x: 0, y: 0, w: 10, h: 10},
		{x: 5, y: 5, w: 10, h: 10},
		{x: 20, y: 0, w: 3, h: 3},
		{x: -4, y: -4, w: 8, h: 8},
		{x: 2, y: 2, w: 1, h: 1},
	}

	for i := range boxes {
		for j := range boxes {
			a1, b1 := boxes[i], boxes[j]
			a2, b2 := boxes[j], boxes[i]
			if Overlap(&a1, &b1) != Overlap(&a2, &b2) {
				t.Errorf("Overlap not symmetric for %+v and %+v", boxes[i], boxes[j])
			}
		}
	}
}

func TestOverlapMarksOnlyOnHit(t *testing.T) {
	a := box{x: 0, y: 0, w: 10, h: 10}
	b := box{x: 20, y: 0, w: 10, h: 10}

	Overlap(&a, &b)
	if a.collided {
		t.Error("miss should not mark a collided")
	}

	b.x = 5
	Overlap(&a, &b)
	if !a.collided {
		t.Error("hit should mark a collided")
	}
	if b.collided {
		t.Error("hit should not mark b collided")
	}

	// The flag is sticky: a later miss does not clear it.
	b.x = 100
	Overlap(&a, &b)
	if !a.collided {
		t.Error("miss cleared the sticky flag")
	}
}

func TestBottomCollision(t *testing.T) {
	floor := box{x: 0, y: 100, w: 200, h: 20}

	standing := box{x: 50, y: 52, w: 10, h: 48} // feet exactly on the floor
	if !BottomCollision(&standing, &floor) {
		t.Error("standing on the floor should report a bottom collision")
	}

	above := box{x: 50, y: 40, w: 10, h: 48} // 12px of air below
	if BottomCollision(&above, &floor) {
		t.Error("airborne box should not report a bottom collision")
	}

	aside := box{x: 300, y: 52, w: 10, h: 48} // right height, no horizontal overlap
	if BottomCollision(&aside, &floor) {
		t.Error("box beside the floor should not report a bottom collision")
	}
}

func TestBottomCollisionImpliesShiftedOverlap(t *testing.T) {
	floor := box{x: 0, y: 100, w: 200, h: 20}
	cases := []box{
		{x: 10, y: 52, w: 10, h: 48},
		{x: 10, y: 51.5, w: 10, h: 48},
		{x: 190, y: 60, w: 20, h: 40},
	}

	for _, c := range cases {
		a := c
		if !BottomCollision(&a, &floor) {
			continue
		}
		shifted := box{x: c.x, y: c.y + 1, w: c.w, h: c.h}
		if !Overlap(&shifted, &floor) {
			t.Errorf("bottom collision at %+v but no overlap after one step down", c)
		}
	}
}

func TestTopCollision(t *testing.T) {
	ceiling := box{x: 0, y: 0, w: 200, h: 20}

	under := box{x: 50, y: 20, w: 10, h: 30} // head exactly on the ceiling
	if !TopCollision(&under, &ceiling) {
		t.Error("box against the ceiling should report a top collision")
	}

	below := box{x: 50, y: 40, w: 10, h: 30}
	if TopCollision(&below, &ceiling) {
		t.Error("box with clearance should not report a top collision")
	}
}

func TestLeftRightCollision(t *testing.T) {
	wall := box{x: 100, y: 0, w: 20, h: 200}

	approaching := box{x: 90, y: 50, w: 10, h: 10} // flush against the left face
	if !RightCollision(&approaching, &wall) {
		t.Error("box flush with the wall should report a right collision")
	}

	far := box{x: 50, y: 50, w: 10, h: 10}
	if RightCollision(&far, &wall) {
		t.Error("distant box should not report a right collision")
	}

	rightSide := box{x: 120, y: 50, w: 10, h: 10} // flush against the right face
	if !LeftCollision(&rightSide, &wall) {
		t.Error("box flush on the right should report a left collision")
	}

	misaligned := box{x: 90, y: 300, w: 10, h: 10} // no vertical overlap
	if RightCollision(&misaligned, &wall) {
		t.Error("vertically separated box should not report a right collision")
	}
}
