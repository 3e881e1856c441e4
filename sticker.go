package cubesim

// Sticker is one facelet-sized unit on the cube's surface. Initial anchors
// the position (and therefore color identity) the sticker had on a freshly
// solved cube and never changes; Current is where the sticker sits now.
type Sticker struct {
	Initial Vec3
	Current Vec3
}

// StickerAt creates a sticker in its solved position.
func StickerAt(p Vec3) Sticker {
	return Sticker{Initial: p, Current: p}
}

// layerOp selects how a layer selector compares a coordinate against its
// threshold.
type layerOp int

const (
	opAny   layerOp = iota // whole-cube rotation, every sticker
	opMin                  // coordinate >= threshold
	opMax                  // coordinate <= threshold
	opExact                // coordinate == threshold (middle slices)
)

// layerSelector decides which stickers a geometric move affects. It is a
// tagged rule (axis, comparison, threshold) evaluated by one interpreter
// rather than a per-move predicate function, which keeps GMove a plain
// comparable value.
type layerSelector struct {
	axis      Axis
	op        layerOp
	threshold int16
}

func (sel layerSelector) matches(pos Vec3) bool {
	var coord int16
	switch sel.axis {
	case AxisX:
		coord = pos.X
	case AxisY:
		coord = pos.Y
	default:
		coord = pos.Z
	}
	switch sel.op {
	case opMin:
		return coord >= sel.threshold
	case opMax:
		return coord <= sel.threshold
	case opExact:
		return coord == sel.threshold
	default:
		return true
	}
}

// GMove is a fully resolved geometric operation: a rotation around an axis,
// restricted to the stickers its selector matches. GMoves are constructed
// per movement application and not persisted.
type GMove struct {
	Movement  Movement
	Axis      Axis
	Clockwise bool
	selector  layerSelector
}

// Rotate applies g to the sticker, returning the result. Stickers outside
// the selected layers come back unchanged; affected stickers keep their
// Initial position and get a rotated Current.
func (s Sticker) Rotate(g GMove) Sticker {
	if !g.selector.matches(s.Current) {
		return s
	}
	turns := int(g.Movement.Turn)
	if !g.Clockwise {
		turns = -turns
	}
	return Sticker{
		Initial: s.Initial,
		Current: s.Current.RotateAxis(g.Axis, turns),
	}
}
