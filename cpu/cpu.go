package cpu

// CPU registers and memory.
type CPU struct {
	// A is the address register.
	A uint16
	// D is the data register.
	D uint16
	// PC is the program counter.
	PC uint16

	// RAM is data memory, including the screen and keyboard maps.
	RAM []uint16
	// ROM holds the loaded program.
	ROM []uint16

	// Cycles count.
	Cycles int
	// Halted is set once the program reaches a halt loop or leaves ROM.
	Halted bool
}

// New creates a new CPU with zeroed RAM and no program.
func New() *CPU {
	return &CPU{
		RAM: make([]uint16, RAMSize),
	}
}

// LoadCode copies a program into ROM and resets the registers.
func (c *CPU) LoadCode(code []uint16) {
	c.ROM = make([]uint16, len(code))
	copy(c.ROM, code)
	c.Reset()
}

// Reset clears the registers and cycle count. RAM is left alone, like the hardware reset line.
func (c *CPU) Reset() {
	c.A, c.D, c.PC = 0, 0, 0
	c.Cycles = 0
	c.Halted = false
}

// Peek returns a RAM word.
func (c *CPU) Peek(addr uint16) uint16 {
	return c.RAM[addr&AddressMask]
}

// Poke sets a RAM word.
func (c *CPU) Poke(addr, value uint16) {
	c.RAM[addr&AddressMask] = value
}

// M returns the word A points at.
func (c *CPU) M() uint16 {
	return c.Peek(c.A)
}

// Registers is a snapshot of the CPU state without memory.
type Registers struct {
	A      uint16
	D      uint16
	PC     uint16
	Cycles int
	Halted bool
}

// Registers returns the current register state.
func (c *CPU) Registers() Registers {
	return Registers{A: c.A, D: c.D, PC: c.PC, Cycles: c.Cycles, Halted: c.Halted}
}
