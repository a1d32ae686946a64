package assembler

import (
	"errors"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/str"

	"github.com/Urethramancer/hack/cpu"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols      *SymbolTable
	nextVariable int

	// KeepGoing makes a run collect every error instead of stopping at the first one.
	KeepGoing bool
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols:      NewSymbolTable(),
		nextVariable: cpu.FirstVariable,
	}
}

// Symbols returns the symbol table of the most recent run.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble takes Hack assembly source and returns one 16-digit binary string per instruction.
func (asm *Assembler) Assemble(src string) ([]string, error) {
	return asm.AssembleLines(Lines(src))
}

// AssembleLines is Assemble for source already split into lines.
func (asm *Assembler) AssembleLines(lines []string) ([]string, error) {
	words, err := asm.AssembleWords(lines)
	if err != nil {
		return nil, err
	}

	code := make([]string, len(words))
	for i, w := range words {
		code[i] = cpu.FormatWord(w)
	}
	return code, nil
}

// AssembleWords runs both passes and returns the machine code as words.
// Every run starts from a fresh symbol table and variable allocator.
func (asm *Assembler) AssembleWords(lines []string) ([]uint16, error) {
	asm.symbols = NewSymbolTable()
	asm.nextVariable = cpu.FirstVariable

	commands, err := parseLines(lines, asm.KeepGoing)
	if err != nil && !asm.KeepGoing {
		return nil, err
	}
	errs := appendErrors(nil, err)

	// Pass 1 must see every label before pass 2 resolves any symbol.
	asm.bindLabels(commands)

	words, err := asm.generate(lines, commands)
	errs = appendErrors(errs, err)
	if err := errs.err(); err != nil {
		return nil, err
	}

	return words, nil
}

// bindLabels is pass 1: it binds every label to the ROM address of the instruction following it.
func (asm *Assembler) bindLabels(commands []Command) {
	rom, labels := 0, 0
	for _, c := range commands {
		switch c.Type {
		case CommandAddress, CommandCompute:
			rom++
		case CommandLabel:
			asm.symbols.AddEntry(c.Text, rom)
			labels++
			glog.V(2).Infof("line %d: label %s = %d", c.Line, c.Text, rom)
		}
	}
	glog.V(1).Infof("pass 1: %d instructions, %d labels", rom, labels)
}

// generate is pass 2: it resolves symbols, allocates variables and encodes every instruction.
func (asm *Assembler) generate(lines []string, commands []Command) ([]uint16, error) {
	asm.nextVariable = cpu.FirstVariable

	var errs ErrorList
	words := make([]uint16, 0, len(commands))
	for _, c := range commands {
		if !c.emits() {
			continue
		}

		var w uint16
		var err error
		if c.Type == CommandAddress {
			w, err = asm.resolveAddress(c)
		} else {
			w, err = encodeCompute(c.Text)
		}

		if err != nil {
			errs = append(errs, &LineError{Line: c.Line, Text: lines[c.Line-1], Err: err})
			if !asm.KeepGoing {
				break
			}
			continue
		}
		words = append(words, w)
	}

	glog.V(1).Infof("pass 2: %d words, %d variables", len(words), asm.nextVariable-cpu.FirstVariable)
	return words, errs.err()
}

// resolveAddress turns the operand of an A-instruction into a word. Numbers bypass the symbol table.
func (asm *Assembler) resolveAddress(c Command) (uint16, error) {
	v, numeric, err := AddressLiteral(c.Text)
	if numeric {
		return v, err
	}

	if !asm.symbols.Contains(c.Text) {
		asm.symbols.AddEntry(c.Text, asm.nextVariable)
		glog.V(2).Infof("line %d: variable %s = %d", c.Line, c.Text, asm.nextVariable)
		asm.nextVariable++
	}

	addr, err := asm.symbols.Address(c.Text)
	if err != nil {
		return 0, err
	}
	return encodeAddress(addr)
}

// Text joins assembled code into the .hack file format, one newline-terminated word per line.
func Text(code []string) string {
	s := str.NewStringer()
	for _, line := range code {
		s.WriteStrings(line, "\n")
	}
	return s.String()
}

// Lines splits source text into lines, accepting CRLF line endings.
func Lines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}

// appendErrors adds err to l, flattening lists.
func appendErrors(l ErrorList, err error) ErrorList {
	if err == nil {
		return l
	}

	var list ErrorList
	if errors.As(err, &list) {
		return append(l, list...)
	}
	return append(l, err)
}
