package assembler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClassification is returned for a line with an empty symbol or label body.
	ErrClassification = errors.New("cannot classify line")
	// ErrFieldSyntax is returned when a compute command does not split into dest=comp;jump.
	ErrFieldSyntax = errors.New("malformed compute fields")
	// ErrUnknownMnemonic is returned for dest, comp or jump text outside the fixed tables.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	// ErrAddressRange is returned when an address does not fit in 15 bits.
	ErrAddressRange = errors.New("address out of range")
	// ErrSymbolNotFound is returned when looking up a symbol the table does not hold.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// LineError ties an error to the source line that caused it.
type LineError struct {
	// Line is 1-based.
	Line int
	// Text is the raw source line.
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ErrorList holds every error of a run made with KeepGoing set.
type ErrorList []error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(l))
	for _, err := range l {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (l ErrorList) Unwrap() []error {
	return l
}

// err returns nil for an empty list, the single error for one, or the list itself.
func (l ErrorList) err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	}
	return l
}
