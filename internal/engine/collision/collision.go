// Package collision implements axis-aligned bounding box predicates used to
// validate entity movement. All checks operate on the Box capability rather
// than concrete entity types, so any drawable that exposes a bounding box can
// participate.
package collision

// Box is the bounding-box capability a collidable entity exposes.
// Bounds returns the top-left corner and the rendered size in pixels.
// MarkCollided records that a check against this box came back positive;
// the flag is sticky and is only ever cleared by the owner.
type Box interface {
	Bounds() (x, y, w, h float32)
	MarkCollided()
}

// Overlap reports whether a and b intersect. Touching edges do not count.
// On a hit, a is marked collided; the flag is never cleared here, so callers
// that need a fresh per-frame baseline must reset it themselves.
func Overlap(a, b Box) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return false
	}
	hit := ax+aw > bx && ax < bx+bw && ay+ah > by && ay < by+bh
	if hit {
		a.MarkCollided()
	}
	return hit
}

// BottomCollision reports whether moving a one pixel down would collide
// with b. The horizontal spans must already overlap; the vertical test then
// anticipates the move with a one-pixel lookahead, which lets movement code
// veto a step before committing it.
func BottomCollision(a, b Box) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return false
	}
	if ax+aw <= bx || ax >= bx+bw {
		return false
	}
	hit := ay < by+bh && ay+ah+1 > by
	if hit {
		a.MarkCollided()
	}
	return hit
}

// TopCollision reports whether moving a one pixel up would collide with b.
func TopCollision(a, b Box) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return false
	}
	if ax+aw <= bx || ax >= bx+bw {
		return false
	}
	hit := ay-1 < by+bh && ay > by
	if hit {
		a.MarkCollided()
	}
	return hit
}

// RightCollision reports whether moving a one pixel right would collide
// with b.
func RightCollision(a, b Box) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return false
	}
	if ay+ah <= by || ay >= by+bh {
		return false
	}
	hit := ax < bx+bw && ax+aw+1 > bx
	if hit {
		a.MarkCollided()
	}
	return hit
}

// LeftCollision reports whether moving a one pixel left would collide
// with b.
func LeftCollision(a, b Box) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return false
	}
	if ay+ah <= by || ay >= by+bh {
		return false
	}
	hit := ax-1 < bx+bw && ax > bx
	if hit {
		a.MarkCollided()
	}
	return hit
}
