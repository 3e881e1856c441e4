package cubesim

// Face identifies one of the six outer faces of the cube. FaceNone marks a
// position that does not lie on the surface, which happens for inner-layer
// points on cubes of size 4 and up.
type Face int

const (
	FaceU Face = iota // Up
	FaceL             // Left
	FaceF             // Front
	FaceR             // Right
	FaceB             // Back
	FaceD             // Down
	FaceNone
)

// OrderedFaces is the canonical face order used for facelet serialization.
var OrderedFaces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// faceAt maps a lattice position to the face it sits on for a cube whose
// outer faces are at ±n. Whichever coordinate equals ±n decides; interior
// points map to FaceNone.
func faceAt(pos Vec3, n int16) Face {
	switch {
	case pos.X == n:
		return FaceR
	case pos.X == -n:
		return FaceL
	case pos.Y == n:
		return FaceU
	case pos.Y == -n:
		return FaceD
	case pos.Z == n:
		return FaceF
	case pos.Z == -n:
		return FaceB
	default:
		return FaceNone
	}
}
