package cubesim

import (
	"sort"
	"strings"
)

// FaceletModel is the flat 2D layout of a cube's stickers: six contiguous
// blocks of N² Face values in the canonical face order (U, R, F, D, L, B),
// each block row-major left-to-right then top-to-bottom as viewed from
// outside that face.
type FaceletModel []Face

// Solved returns the facelet model of a solved cube of the given size.
func Solved(size int) FaceletModel {
	perFace := size * size
	model := make(FaceletModel, 0, 6*perFace)
	for _, face := range OrderedFaces {
		for i := 0; i < perFace; i++ {
			model = append(model, face)
		}
	}
	return model
}

// Equal reports whether two models are identical.
func (m FaceletModel) Equal(other FaceletModel) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// uniformBlocks reports whether each face block holds a single Face value.
func (m FaceletModel) uniformBlocks() bool {
	perFace := len(m) / 6
	for b := 0; b < 6; b++ {
		block := m[b*perFace : (b+1)*perFace]
		for _, f := range block[1:] {
			if f != block[0] {
				return false
			}
		}
	}
	return true
}

// faceletRotations brings each target face onto the Front position before
// reading it off. Front itself needs no setup move.
var faceletRotations = map[Face]Movement{
	FaceU: {Move: MoveX, Turn: CCW},
	FaceR: {Move: MoveY, Turn: CW},
	FaceL: {Move: MoveY, Turn: CCW},
	FaceB: {Move: MoveY, Turn: Double},
	FaceD: {Move: MoveX, Turn: CW},
}

// ToFaceletModel projects the cube's 3D state onto a FaceletModel.
//
// For each face in canonical order, a throwaway copy of the cube is rotated
// so the target face lands on Front, the N² stickers now on Front are sorted
// into reading order (top row first, left to right: descending Y, then
// ascending X), and each sticker contributes the face of its initial
// position, i.e. its original color identity.
func (c *GCube) ToFaceletModel() FaceletModel {
	model := make(FaceletModel, 0, 6*c.size*c.size)
	for _, face := range OrderedFaces {
		view := c.Clone()
		if mv, ok := faceletRotations[face]; ok {
			view.ApplyMovement(mv)
		}

		front := make([]Sticker, 0, c.size*c.size)
		for _, s := range view.stickers {
			if view.FaceOf(s.Current) == FaceF {
				front = append(front, s)
			}
		}
		sort.Slice(front, func(i, j int) bool {
			a, b := front[i].Current, front[j].Current
			if a.Y != b.Y {
				return a.Y > b.Y
			}
			return a.X < b.X
		})

		for _, s := range front {
			model = append(model, c.FaceOf(s.Initial))
		}
	}
	return model
}

// String renders the model as a text net:
//
//	 U
//	LFRB
//	 D
func (m FaceletModel) String() string {
	size := 1
	for size*size*6 < len(m) {
		size++
	}
	perFace := size * size

	block := func(f Face) []Face {
		for i, ordered := range OrderedFaces {
			if ordered == f {
				return m[i*perFace : (i+1)*perFace]
			}
		}
		return nil
	}

	var b strings.Builder
	indent := strings.Repeat("  ", size)
	writeRow := func(faces []Face, row int) {
		for col := 0; col < size; col++ {
			b.WriteString(faces[row*size+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < size; row++ {
		b.WriteString(indent)
		writeRow(block(FaceU), row)
		b.WriteByte('\n')
	}
	for row := 0; row < size; row++ {
		for _, f := range [4]Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(block(f), row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < size; row++ {
		b.WriteString(indent)
		writeRow(block(FaceD), row)
		b.WriteByte('\n')
	}
	return b.String()
}
