package cpu

// DecodedInstruction holds the fields of one instruction word.
type DecodedInstruction struct {
	Word uint16
	// Compute is true for C-instructions.
	Compute bool
	// Value is the 15-bit payload of an A-instruction.
	Value uint16
	Comp  uint16
	Dest  uint16
	Jump  uint16
}

// Decode splits a word into its fields. Bit 15 alone selects the instruction form,
// so bits 14..13 of a C-instruction are not checked.
func Decode(word uint16) DecodedInstruction {
	if word&0x8000 == 0 {
		return DecodedInstruction{Word: word, Value: word & AddressMask}
	}

	return DecodedInstruction{
		Word:    word,
		Compute: true,
		Comp:    (word >> CompShift) & CompMask,
		Dest:    (word >> DestShift) & DestMask,
		Jump:    word & JumpMask,
	}
}

// UsesMemory reports whether the comp field reads M instead of A.
func (d DecodedInstruction) UsesMemory() bool {
	return d.Compute && d.Comp&0x40 != 0
}

// Encode assembles a C-instruction word from its fields.
func Encode(comp, dest, jump uint16) uint16 {
	return OPCompute | (comp&CompMask)<<CompShift | (dest&DestMask)<<DestShift | jump&JumpMask
}
