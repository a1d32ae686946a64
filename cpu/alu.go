package cpu

// ALU control bits, c1..c6 of the comp field.
const (
	aluZX = 1 << 5
	aluNX = 1 << 4
	aluZY = 1 << 3
	aluNY = 1 << 2
	aluF  = 1 << 1
	aluNO = 1 << 0
)

// ALU computes out from x and y under the six control bits of a comp code.
// The a-bit is not examined; the caller picks y.
func ALU(x, y, control uint16) uint16 {
	if control&aluZX != 0 {
		x = 0
	}
	if control&aluNX != 0 {
		x = ^x
	}
	if control&aluZY != 0 {
		y = 0
	}
	if control&aluNY != 0 {
		y = ^y
	}

	var out uint16
	if control&aluF != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if control&aluNO != 0 {
		out = ^out
	}
	return out
}

// jumps reports whether the jump bits select a branch for the ALU output.
func jumps(jump, out uint16) bool {
	v := int16(out)
	switch {
	case v < 0:
		return jump&JumpLT != 0
	case v == 0:
		return jump&JumpEQ != 0
	default:
		return jump&JumpGT != 0
	}
}
