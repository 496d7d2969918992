package engine

// Geometry comparisons below run in 16-bit unsigned space: a coordinate that
// stepped past zero wraps to a large value and compares the way map data
// expects it to.

// TestSpriteMove reports whether a sprite frame can occupy x,y after a step
// in dir. x,y is the destination, not the current position.
func (w *World) TestSpriteMove(dir Dir4, s Sprite, frame, x, y int) Move {
	width, height := w.Sprites.Size(s, frame)
	m := w.Map

	switch dir {
	case Dir4North:
		row := y - height + 1
		for i := range width {
			if m.blockNorth(x+i, row) {
				return MoveBlocked
			}
		}

	case Dir4South:
		for i := range width {
			if m.sloped(x+i, y) {
				return MoveSloped
			}
			if m.blockSouth(x+i, y) {
				return MoveBlocked
			}
		}

	case Dir4West:
		if uint16(x) == 0 {
			return MoveBlocked
		}
		for i := range height {
			if i == 0 && m.sloped(x, y) && !m.blockWest(x, y-1) {
				return MoveSloped
			}
			if m.blockWest(x, y-i) {
				return MoveBlocked
			}
		}

	case Dir4East:
		if uint16(x)+uint16(width) == uint16(m.Width) {
			return MoveBlocked
		}
		col := x + width - 1
		for i := range height {
			if i == 0 && m.sloped(col, y) && !m.blockEast(col, y-1) {
				return MoveSloped
			}
			if m.blockEast(col, y-i) {
				return MoveBlocked
			}
		}
	}

	return MoveFree
}

// TestPlayerMove is TestSpriteMove for the fixed 3x5 player box. It also
// refreshes the sliding flags (south probes) and the cling flag (west/east
// probes), which the caller reads right after.
func (w *World) TestPlayerMove(dir Dir4, x, y int) Move {
	p := &w.Player
	m := w.Map

	p.SlidingEast = false
	p.SlidingWest = false

	switch dir {
	case Dir4North:
		if uint16(p.Y)-3 == 0 || uint16(p.Y)-2 == 0 {
			return MoveBlocked
		}
		for i := range 3 {
			if m.blockNorth(x+i, y-4) {
				return MoveBlocked
			}
		}

	case Dir4South:
		if uint16(m.Height+ScrollH) == uint16(p.Y) {
			return MoveFree
		}

		slide := AttrSloped | AttrSlippery
		if !m.blockSouth(x, y) && m.Attr(m.Tile(x, y))&slide == slide {
			p.SlidingEast = true
		}
		if !m.blockSouth(x+2, y) && m.Attr(m.Tile(x+2, y))&slide == slide {
			p.SlidingWest = true
		}

		for i := range 3 {
			if m.sloped(x+i, y) {
				p.PounceStreak = 0
				return MoveSloped
			}
			if m.blockSouth(x+i, y) {
				p.PounceStreak = 0
				return MoveBlocked
			}
		}

	case Dir4West:
		p.CanCling = m.canCling(x, y-2)
		for i := range 5 {
			if m.blockWest(x, y-i) {
				return MoveBlocked
			}
			if i == 0 && m.sloped(x, y) && !m.blockWest(x, y-1) {
				return MoveSloped
			}
		}

	case Dir4East:
		p.CanCling = m.canCling(x+2, y-2)
		for i := range 5 {
			if m.blockEast(x+2, y-i) {
				return MoveBlocked
			}
			if i == 0 && m.sloped(x+2, y) && !m.blockEast(x+2, y-1) {
				return MoveSloped
			}
		}
	}

	return MoveFree
}

// IsSpriteVisible reports whether any part of the sprite frame at x,y falls
// inside the scroll window.
func (w *World) IsSpriteVisible(s Sprite, frame, x, y int) bool {
	width, height := w.Sprites.Size(s, frame)
	ux, uy := uint16(x), uint16(y)
	sx, sy := uint16(w.ScrollX), uint16(w.ScrollY)
	uw, uh := uint16(width), uint16(height)

	horiz := (sx <= ux && sx+ScrollW > ux) || (sx >= ux && ux+uw > sx)
	vert := (sy+ScrollH > (uy-uh)+1 && sy+ScrollH <= uy) || (uy >= sy && sy+ScrollH > uy)
	return horiz && vert
}

// IsTouchingPlayer reports whether the sprite frame at x,y overlaps the
// player. A dead player touches nothing. An explosion that wrapped west of
// column zero is clipped to start at zero.
func (w *World) IsTouchingPlayer(s Sprite, frame, x, y int) bool {
	p := &w.Player
	if p.DeadTime != 0 {
		return false
	}

	width, height := w.Sprites.Size(s, frame)
	ux, uy := uint16(x), uint16(y)
	uw, uh := uint16(width), uint16(height)
	px, py := uint16(p.X), uint16(p.Y)

	if ux > uint16(w.Map.Width) && s == SprExplosion {
		uw = ux + uw
		ux = 0
	}

	horiz := (px <= ux && px+3 > ux) || (px >= ux && ux+uw > px)
	vert := (uy-uh < py && py <= uy) || (py-4 <= uy && uy <= py)
	return horiz && vert
}

// IsIntersecting reports whether two sprite frames overlap.
func (w *World) IsIntersecting(s1 Sprite, frame1, x1, y1 int, s2 Sprite, frame2, x2, y2 int) bool {
	width1, height1 := w.Sprites.Size(s1, frame1)
	width2, height2 := w.Sprites.Size(s2, frame2)
	ax, ay := uint16(x1), uint16(y1)
	bx, by := uint16(x2), uint16(y2)
	aw, ah := uint16(width1), uint16(height1)
	bw, bh := uint16(width2), uint16(height2)

	if ax > uint16(w.Map.Width) {
		aw = ax + aw
		ax = 0
	}

	horiz := (bx <= ax && bx+bw > ax) || (bx >= ax && ax+aw > bx)
	vert := (ay-ah < by && by <= ay) || (by-bh < ay && ay <= by)
	return horiz && vert
}
