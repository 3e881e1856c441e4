package cubesim

import "fmt"

// Axis identifies a principal rotation axis.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Vec3 is an integer 3-vector used both as a sticker position and as a
// rotation axis selector. Components are int16: coordinate magnitudes grow
// with cube size (outer faces sit at ±N), so int16 covers any cube that
// could plausibly be simulated.
//
// Vec3 is a value type; every operation returns a new vector.
type Vec3 struct {
	X, Y, Z int16
}

// NewVec3 constructs a vector from components.
func NewVec3(x, y, z int16) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vec3 {
	return Vec3{}
}

// Neg returns the component-wise negation.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return v.Add(w.Neg())
}

// Scale returns the scalar product s*v.
func (v Vec3) Scale(s int16) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) int16 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns the squared euclidean length.
func (v Vec3) LengthSquared() int16 {
	return v.Dot(v)
}

func (v Vec3) String() string {
	return fmt.Sprintf("%d %d %d", v.X, v.Y, v.Z)
}

// Exact trig tables for 90-degree multiples. The puzzle only ever rotates by
// right angles, so all rotations stay in integer arithmetic and positions can
// be compared for equality without epsilon.
var (
	cos90 = [4]int16{1, 0, -1, 0}
	sin90 = [4]int16{0, 1, 0, -1}
)

// RotateAxis rotates v around the given axis by turns quarter turns,
// clockwise when viewed from the positive end of the axis. Negative counts
// rotate counter-clockwise.
func (v Vec3) RotateAxis(axis Axis, turns int) Vec3 {
	// The rotation matrices below follow the usual convention where a
	// positive angle turns counter-clockwise, so flip the sign first.
	t := ((-turns % 4) + 4) % 4
	if t == 0 {
		return v
	}
	c, s := cos90[t], sin90[t]
	switch axis {
	case AxisX:
		return Vec3{
			X: v.X,
			Y: c*v.Y - s*v.Z,
			Z: s*v.Y + c*v.Z,
		}
	case AxisY:
		return Vec3{
			X: c*v.X + s*v.Z,
			Y: v.Y,
			Z: -s*v.X + c*v.Z,
		}
	default: // AxisZ
		return Vec3{
			X: c*v.X - s*v.Y,
			Y: s*v.X + c*v.Y,
			Z: v.Z,
		}
	}
}
