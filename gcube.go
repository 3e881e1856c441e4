package cubesim

// GCube simulates an N×N×N cube geometrically. It owns all 6·N² stickers.
//
// Each cubic piece is 2 units long with the cube centered on the origin:
// sticker coordinates run over the odd lattice {-N+1, -N+3, …, N-1} within a
// face, and the outer faces sit at ±N. On a size-3 cube the U center piece is
// centered at (0, 2, 0) and its sticker sits on the surface at (0, 3, 0).
type GCube struct {
	size     int
	stickers []Sticker
}

// New creates a solved cube of the given size. Sizes below 1 are clamped
// to 1.
func New(size int) *GCube {
	if size < 1 {
		size = 1
	}
	c := &GCube{size: size}
	c.reset()
	return c
}

// reset rebuilds the sticker collection in the solved state.
func (c *GCube) reset() {
	n := int16(c.size)
	c.stickers = make([]Sticker, 0, 6*c.size*c.size)
	for _, face := range [2]int16{-n, n} {
		// The other two coordinates place the sticker within its face;
		// (0, 0) is the face center on odd cubes.
		for c1 := -n + 1; c1 <= n-1; c1 += 2 {
			for c2 := -n + 1; c2 <= n-1; c2 += 2 {
				c.stickers = append(c.stickers,
					StickerAt(NewVec3(face, c1, c2)),
					StickerAt(NewVec3(c1, face, c2)),
					StickerAt(NewVec3(c1, c2, face)),
				)
			}
		}
	}
}

// Size returns the cube's side length N.
func (c *GCube) Size() int {
	return c.size
}

// Stickers returns a copy of the cube's sticker collection.
func (c *GCube) Stickers() []Sticker {
	out := make([]Sticker, len(c.stickers))
	copy(out, c.stickers)
	return out
}

// Clone creates a deep copy of the cube.
func (c *GCube) Clone() *GCube {
	clone := &GCube{size: c.size, stickers: make([]Sticker, len(c.stickers))}
	copy(clone.stickers, c.stickers)
	return clone
}

// gmoveFor resolves a movement into the geometric move it denotes on this
// cube. Wide moves use a threshold two units looser than the single-layer
// move, so they catch the adjacent inner layer as well. Slice moves select
// the exact middle layer; on even cubes no sticker sits at coordinate 0 and
// they match nothing.
func (c *GCube) gmoveFor(mv Movement) GMove {
	n := int16(c.size)
	sel := func(axis Axis, op layerOp, threshold int16) layerSelector {
		return layerSelector{axis: axis, op: op, threshold: threshold}
	}
	switch mv.Move {
	case MoveU:
		return GMove{mv, AxisY, true, sel(AxisY, opMin, n-2)}
	case MoveUw:
		return GMove{mv, AxisY, true, sel(AxisY, opMin, n-4)}
	case MoveD:
		return GMove{mv, AxisY, false, sel(AxisY, opMax, -n+2)}
	case MoveDw:
		return GMove{mv, AxisY, false, sel(AxisY, opMax, -n+4)}
	case MoveR:
		return GMove{mv, AxisX, true, sel(AxisX, opMin, n-2)}
	case MoveRw:
		return GMove{mv, AxisX, true, sel(AxisX, opMin, n-4)}
	case MoveL:
		return GMove{mv, AxisX, false, sel(AxisX, opMax, -n+2)}
	case MoveLw:
		return GMove{mv, AxisX, false, sel(AxisX, opMax, -n+4)}
	case MoveF:
		return GMove{mv, AxisZ, true, sel(AxisZ, opMin, n-2)}
	case MoveFw:
		return GMove{mv, AxisZ, true, sel(AxisZ, opMin, n-4)}
	case MoveB:
		return GMove{mv, AxisZ, false, sel(AxisZ, opMax, -n+2)}
	case MoveBw:
		return GMove{mv, AxisZ, false, sel(AxisZ, opMax, -n+4)}
	case MoveE:
		return GMove{mv, AxisY, false, sel(AxisY, opExact, 0)}
	case MoveM:
		return GMove{mv, AxisX, false, sel(AxisX, opExact, 0)}
	case MoveS:
		return GMove{mv, AxisZ, true, sel(AxisZ, opExact, 0)}
	case MoveX:
		return GMove{mv, AxisX, true, sel(AxisX, opAny, 0)}
	case MoveY:
		return GMove{mv, AxisY, true, sel(AxisY, opAny, 0)}
	default: // MoveZ
		return GMove{mv, AxisZ, true, sel(AxisZ, opAny, 0)}
	}
}

// applyGMove applies a geometric move to every sticker.
func (c *GCube) applyGMove(g GMove) {
	for i := range c.stickers {
		c.stickers[i] = c.stickers[i].Rotate(g)
	}
}

// ApplyMovement applies a single movement to the cube.
func (c *GCube) ApplyMovement(mv Movement) {
	c.applyGMove(c.gmoveFor(mv))
}

// ApplyMovements applies a sequence of movements in order. Moves are strictly
// sequential; each completes before the next begins.
func (c *GCube) ApplyMovements(movements []Movement) {
	for _, mv := range movements {
		c.ApplyMovement(mv)
	}
}

// ApplyNotation parses a scramble string and applies it. Nothing is applied
// if any token fails to parse.
func (c *GCube) ApplyNotation(s string) error {
	movements, err := ParseScramble(s)
	if err != nil {
		return err
	}
	c.ApplyMovements(movements)
	return nil
}

// Grow rebuilds the cube solved at size N+1. Any scrambled state is
// discarded.
func (c *GCube) Grow() {
	c.size++
	c.reset()
}

// Shrink rebuilds the cube solved at size N-1, flooring at 1.
func (c *GCube) Shrink() {
	if c.size > 1 {
		c.size--
	}
	c.reset()
}

// FaceOf returns the outer face a position sits on, or FaceNone for interior
// points.
func (c *GCube) FaceOf(pos Vec3) Face {
	return faceAt(pos, int16(c.size))
}

// IsSolved reports whether every face shows a single color. A solved cube
// that has only been rotated as a whole still counts as solved.
func (c *GCube) IsSolved() bool {
	return c.ToFaceletModel().uniformBlocks()
}
