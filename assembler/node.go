package assembler

// CommandType defines the kind of a source line.
type CommandType int

const (
	// CommandIgnore is a blank or comment-only line.
	CommandIgnore CommandType = iota
	// CommandAddress is an A-instruction, "@value".
	CommandAddress
	// CommandCompute is a C-instruction, "dest=comp;jump".
	CommandCompute
	// CommandLabel is a label declaration, "(name)".
	CommandLabel
)

func (t CommandType) String() string {
	switch t {
	case CommandIgnore:
		return "ignore"
	case CommandAddress:
		return "address"
	case CommandCompute:
		return "compute"
	case CommandLabel:
		return "label"
	}
	return "unknown"
}

// Command represents one classified source line.
type Command struct {
	Type CommandType
	// Text is the symbol or literal after '@', the label name, or the full compute text.
	Text string
	// Line is the 1-based source line number.
	Line int
}

// emits reports whether the command occupies a ROM address.
func (c Command) emits() bool {
	return c.Type == CommandAddress || c.Type == CommandCompute
}
