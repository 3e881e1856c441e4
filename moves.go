package cubesim

// Predefined movements for convenience.
// Use these instead of constructing Movement structs manually.
//
// Example:
//
//	cube.ApplyMovements([]cubesim.Movement{cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime})
var (
	// Right face moves
	R      = Movement{Move: MoveR, Turn: CW}     // Right clockwise
	RPrime = Movement{Move: MoveR, Turn: CCW}    // Right counter-clockwise
	R2     = Movement{Move: MoveR, Turn: Double} // Right 180

	// Left face moves
	L      = Movement{Move: MoveL, Turn: CW}
	LPrime = Movement{Move: MoveL, Turn: CCW}
	L2     = Movement{Move: MoveL, Turn: Double}

	// Up face moves
	U      = Movement{Move: MoveU, Turn: CW}
	UPrime = Movement{Move: MoveU, Turn: CCW}
	U2     = Movement{Move: MoveU, Turn: Double}

	// Down face moves
	D      = Movement{Move: MoveD, Turn: CW}
	DPrime = Movement{Move: MoveD, Turn: CCW}
	D2     = Movement{Move: MoveD, Turn: Double}

	// Front face moves
	F      = Movement{Move: MoveF, Turn: CW}
	FPrime = Movement{Move: MoveF, Turn: CCW}
	F2     = Movement{Move: MoveF, Turn: Double}

	// Back face moves
	B      = Movement{Move: MoveB, Turn: CW}
	BPrime = Movement{Move: MoveB, Turn: CCW}
	B2     = Movement{Move: MoveB, Turn: Double}

	// Slice moves
	M      = Movement{Move: MoveM, Turn: CW}
	MPrime = Movement{Move: MoveM, Turn: CCW}
	M2     = Movement{Move: MoveM, Turn: Double}
	E      = Movement{Move: MoveE, Turn: CW}
	EPrime = Movement{Move: MoveE, Turn: CCW}
	S      = Movement{Move: MoveS, Turn: CW}
	SPrime = Movement{Move: MoveS, Turn: CCW}

	// Whole-cube rotations
	X      = Movement{Move: MoveX, Turn: CW}
	XPrime = Movement{Move: MoveX, Turn: CCW}
	X2     = Movement{Move: MoveX, Turn: Double}
	Y      = Movement{Move: MoveY, Turn: CW}
	YPrime = Movement{Move: MoveY, Turn: CCW}
	Y2     = Movement{Move: MoveY, Turn: Double}
	Z      = Movement{Move: MoveZ, Turn: CW}
	ZPrime = Movement{Move: MoveZ, Turn: CCW}
	Z2     = Movement{Move: MoveZ, Turn: Double}
)

// SexyMove is R U R' U', one of the most common triggers.
var SexyMove = []Movement{R, U, RPrime, UPrime}

// TPerm swaps two corners and two edges on the top layer.
var TPerm = []Movement{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
