package cpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WordBits is the width of one instruction in the .hack text format.
const WordBits = 16

// ErrBadWord is returned for a .hack line that is not exactly 16 binary digits.
var ErrBadWord = errors.New("not a 16-bit binary word")

// FormatWord renders a word as 16 binary digits.
func FormatWord(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

// ParseWord parses 16 binary digits.
func ParseWord(s string) (uint16, error) {
	if len(s) != WordBits {
		return 0, fmt.Errorf("%q: %w", s, ErrBadWord)
	}

	v, err := strconv.ParseUint(s, 2, WordBits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadWord)
	}

	return uint16(v), nil
}

// ParseProgram reads .hack text, one word per line. Blank lines are skipped.
func ParseProgram(text string) ([]uint16, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	words := make([]uint16, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		w, err := ParseWord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		words = append(words, w)
	}
	return words, nil
}
