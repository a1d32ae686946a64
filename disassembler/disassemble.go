package disassembler

import (
	"errors"
	"fmt"

	"github.com/grimdork/climate/str"

	"github.com/Urethramancer/hack/cpu"
)

// ErrUnknownComp is returned for a C-instruction whose comp bits match no mnemonic.
var ErrUnknownComp = errors.New("unknown comp code")

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	Address  uint16
	Word     uint16
	Mnemonic string
	// Target is set on an A-instruction whose value feeds the jump right after it.
	Target bool
}

// Mnemonic returns the assembly text for one word.
func Mnemonic(word uint16) (string, error) {
	d := cpu.Decode(word)
	if !d.Compute {
		return fmt.Sprintf("@%d", d.Value), nil
	}

	comp, ok := cpu.CompMnemonics[d.Comp]
	if !ok {
		return "", fmt.Errorf("%016b: %w %07b", word, ErrUnknownComp, d.Comp)
	}

	s := comp
	if dest := cpu.DestMnemonics[d.Dest]; dest != "" {
		s = dest + "=" + s
	}
	if jump := cpu.JumpMnemonics[d.Jump]; jump != "" {
		s = s + ";" + jump
	}
	return s, nil
}

// Disassemble turns machine code back into assembly source that reassembles to the same words.
// Addresses used as jump targets get labels.
func Disassemble(code []uint16) (string, error) {
	if len(code) == 0 {
		return "", nil
	}

	// Linear sweep
	instructions := make([]*Instruction, len(code))
	for i, w := range code {
		mn, err := Mnemonic(w)
		if err != nil {
			return "", fmt.Errorf("address %d: %w", i, err)
		}
		instructions[i] = &Instruction{Address: uint16(i), Word: w, Mnemonic: mn}
	}

	// Jump targets: the A register value loaded right before a jumping instruction.
	labelTargets := make(map[uint16]bool)
	for i := 1; i < len(instructions); i++ {
		d := cpu.Decode(instructions[i].Word)
		if !d.Compute || d.Jump == 0 {
			continue
		}

		prev := instructions[i-1]
		target := cpu.Decode(prev.Word)
		if target.Compute || int(target.Value) >= len(code) {
			continue
		}
		prev.Target = true
		labelTargets[target.Value] = true
	}

	// Render
	out := str.NewStringer()
	for _, inst := range instructions {
		if labelTargets[inst.Address] {
			out.WriteStrings("(", labelName(inst.Address), ")\n")
		}

		if inst.Target {
			out.WriteStrings("    @", labelName(cpu.Decode(inst.Word).Value), "\n")
			continue
		}
		out.WriteStrings("    ", inst.Mnemonic, "\n")
	}

	return out.String(), nil
}

func labelName(addr uint16) string {
	return fmt.Sprintf("L_%d", addr)
}
