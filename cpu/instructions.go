package cpu

import "strconv"

// Word layout.
const (
	// AddressMask selects the 15-bit value of an A-instruction.
	AddressMask = 0x7FFF
	// MaxAddress is the largest value an A-instruction can load.
	MaxAddress = AddressMask
	// OPCompute is the prefix of every C-instruction (bits 15..13 set).
	OPCompute = 0xE000
	// CompShift is the position of the 7-bit comp field (a c1..c6).
	CompShift = 6
	// DestShift is the position of the 3-bit dest field (d1 d2 d3).
	DestShift = 3
	// CompMask isolates comp after shifting.
	CompMask = 0x7F
	// DestMask isolates dest after shifting.
	DestMask = 0x7
	// JumpMask isolates jump.
	JumpMask = 0x7
)

// Dest bits.
const (
	DestM = 1 << 0
	DestD = 1 << 1
	DestA = 1 << 2
)

// Jump bits.
const (
	JumpGT = 1 << 0
	JumpEQ = 1 << 1
	JumpLT = 1 << 2
)

// Memory map.
const (
	// RAMSize is the number of 16-bit words of data memory.
	RAMSize = 32768
	// ROMSize is the number of instructions the program counter can address.
	ROMSize = 32768
	// Screen is the first word of the memory-mapped display.
	Screen = 16384
	// Keyboard is the memory-mapped keyboard register.
	Keyboard = 24576
	// FirstVariable is the first RAM address handed to user variables.
	FirstVariable = 16
)

// DestCodes maps every dest mnemonic to its 3-bit code. The empty mnemonic means no destination.
var DestCodes = map[string]uint16{
	"":    0,
	"M":   DestM,
	"D":   DestD,
	"MD":  DestD | DestM,
	"A":   DestA,
	"AM":  DestA | DestM,
	"AD":  DestA | DestD,
	"AMD": DestA | DestD | DestM,
}

// JumpCodes maps every jump mnemonic to its 3-bit code. The empty mnemonic means no jump.
var JumpCodes = map[string]uint16{
	"":    0,
	"JGT": 1,
	"JEQ": 2,
	"JGE": 3,
	"JLT": 4,
	"JNE": 5,
	"JLE": 6,
	"JMP": 7,
}

// CompCodes maps every canonical comp mnemonic to its 7-bit code (a c1 c2 c3 c4 c5 c6).
var CompCodes = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,
	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

// CompAliases maps the swapped operand order of commutative comp mnemonics to their canonical form.
var CompAliases = map[string]string{
	"1+D": "D+1",
	"1+A": "A+1",
	"1+M": "M+1",
	"A+D": "D+A",
	"M+D": "D+M",
	"A&D": "D&A",
	"M&D": "D&M",
	"A|D": "D|A",
	"M|D": "D|M",
}

// Inverse tables, built once from the ones above.
var (
	DestMnemonics = invert(DestCodes)
	JumpMnemonics = invert(JumpCodes)
	CompMnemonics = invert(CompCodes)
)

func invert(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Predefined returns a fresh copy of the architecture's predefined symbols.
func Predefined() map[string]int {
	syms := map[string]int{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": Screen,
		"KBD":    Keyboard,
	}
	for i := 0; i < 16; i++ {
		syms["R"+strconv.Itoa(i)] = i
	}
	return syms
}
