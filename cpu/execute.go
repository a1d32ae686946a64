package cpu

import (
	"errors"
	"fmt"
)

// ErrPCOutOfRange is returned when stepping with the PC past the end of ROM.
var ErrPCOutOfRange = errors.New("program counter outside ROM")

// Execute fetches, decodes, and executes a single instruction.
func (c *CPU) Execute() error {
	if int(c.PC) >= len(c.ROM) {
		c.Halted = true
		return fmt.Errorf("pc %d: %w", c.PC, ErrPCOutOfRange)
	}

	// Fetch
	pc := c.PC
	inst := Decode(c.ROM[pc])
	c.Cycles++

	if !inst.Compute {
		c.A = inst.Value
		c.PC++
		return nil
	}

	y := c.A
	if inst.UsesMemory() {
		y = c.M()
	}
	out := ALU(c.D, y, inst.Comp)

	// Memory and the jump target both see A as it was before this instruction.
	addr := c.A
	if inst.Dest&DestM != 0 {
		c.Poke(addr, out)
	}
	if inst.Dest&DestD != 0 {
		c.D = out
	}
	if inst.Dest&DestA != 0 {
		c.A = out
	}

	if jumps(inst.Jump, out) {
		c.PC = addr
	} else {
		c.PC++
	}

	if c.PC == pc-1 && inst.Jump == JumpLT|JumpEQ|JumpGT && c.isHaltLoop(c.PC) {
		c.Halted = true
	}
	return nil
}

// isHaltLoop checks for "@n" at address n followed by an unconditional jump.
func (c *CPU) isHaltLoop(addr uint16) bool {
	if int(addr) >= len(c.ROM) {
		return false
	}
	prev := Decode(c.ROM[addr])
	return !prev.Compute && prev.Value == addr
}

// Run executes until the program halts or max instructions have run.
// It returns the number of instructions executed. Leaving ROM counts as halting.
func (c *CPU) Run(max int) (int, error) {
	start := c.Cycles
	for !c.Halted && c.Cycles-start < max {
		err := c.Execute()
		if errors.Is(err, ErrPCOutOfRange) {
			break
		}
		if err != nil {
			return c.Cycles - start, err
		}
	}
	return c.Cycles - start, nil
}
