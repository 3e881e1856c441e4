package cubesim

import "testing"

func TestRotateAxisZeroTurnsIsIdentity(t *testing.T) {
	v := NewVec3(3, -2, 1)
	if got := v.RotateAxis(AxisX, 0); got != v {
		t.Errorf("RotateAxis(X, 0) = %v; want %v", got, v)
	}
}

func TestRotateAxisKnownPositions(t *testing.T) {
	cases := []struct {
		name  string
		v     Vec3
		axis  Axis
		turns int
		want  Vec3
	}{
		// Clockwise viewed from the positive end of each axis.
		{"Y_CW_RightToFront", NewVec3(3, 2, 0), AxisY, 1, NewVec3(0, 2, 3)},
		{"Y_CCW_FrontToRight", NewVec3(0, 2, 3), AxisY, -1, NewVec3(3, 2, 0)},
		{"X_Double_UpToDown", NewVec3(0, 3, 0), AxisX, 2, NewVec3(0, -3, 0)},
		{"X_Double_FrontDownToBackUp", NewVec3(0, -2, 3), AxisX, 2, NewVec3(0, 2, -3)},
		{"X_CCW_UpToFront", NewVec3(0, 3, 0), AxisX, -1, NewVec3(0, 0, 3)},
		{"Z_CW_UpToRight", NewVec3(0, 3, 0), AxisZ, 1, NewVec3(3, 0, 0)},
		{"OnAxisUnchanged", NewVec3(0, 3, 0), AxisY, 1, NewVec3(0, 3, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.RotateAxis(tc.axis, tc.turns); got != tc.want {
				t.Errorf("RotateAxis(%v, %v, %d) = %v; want %v", tc.v, tc.axis, tc.turns, got, tc.want)
			}
		})
	}
}

func TestRotateAxisFourTurnsIsIdentity(t *testing.T) {
	v := NewVec3(2, -3, 1)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		got := v
		for i := 0; i < 4; i++ {
			got = got.RotateAxis(axis, 1)
		}
		if got != v {
			t.Errorf("four quarter turns around %v moved %v to %v", axis, v, got)
		}
	}
}

func TestRotateAxisTurnCountNormalization(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		// n and n±4 are the same rotation; -1 and 3 likewise.
		for turns := -5; turns <= 5; turns++ {
			a := v.RotateAxis(axis, turns)
			b := v.RotateAxis(axis, turns+4)
			if a != b {
				t.Errorf("axis %v: turns %d and %d disagree: %v vs %v", axis, turns, turns+4, a, b)
			}
		}
	}
}

func TestVecOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 6)

	if got := a.Add(b); got != NewVec3(-3, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != NewVec3(5, -3, -3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Scale(3); got != NewVec3(3, 6, 9) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 24 {
		t.Errorf("Dot = %d; want 24", got)
	}
	if got := a.Cross(b); got != NewVec3(-3, -18, 13) {
		t.Errorf("Cross = %v; want -3 -18 13", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared = %d; want 14", got)
	}
	if got := Zero(); got != NewVec3(0, 0, 0) {
		t.Errorf("Zero = %v", got)
	}
}
