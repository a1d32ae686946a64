package assembler

import (
	"fmt"
	"strings"
)

const commentMarker = "//"

// Classify strips the comment and surrounding whitespace from a source line and
// determines what kind of command it holds. The returned Command has no line number.
func Classify(raw string) (Command, error) {
	line, _, _ := strings.Cut(raw, commentMarker)
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Type: CommandIgnore}, nil
	}

	switch line[0] {
	case '@':
		body := strings.TrimSpace(line[1:])
		if body == "" {
			return Command{}, fmt.Errorf("%w: '@' needs a symbol or value", ErrClassification)
		}
		return Command{Type: CommandAddress, Text: body}, nil

	case '(':
		end := strings.IndexByte(line, ')')
		if end == -1 {
			return Command{}, fmt.Errorf("%w: label %q is missing ')'", ErrClassification, line)
		}
		name := strings.TrimSpace(line[1:end])
		if name == "" {
			return Command{}, fmt.Errorf("%w: empty label", ErrClassification)
		}
		if rest := strings.TrimSpace(line[end+1:]); rest != "" {
			return Command{}, fmt.Errorf("%w: unexpected %q after label", ErrClassification, rest)
		}
		return Command{Type: CommandLabel, Text: name}, nil
	}

	return Command{Type: CommandCompute, Text: line}, nil
}

// parseLines classifies every raw source line. Classification errors carry their line number.
func parseLines(lines []string, keepGoing bool) ([]Command, error) {
	var errs ErrorList
	commands := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmd, err := Classify(line)
		if err != nil {
			errs = append(errs, &LineError{Line: i + 1, Text: line, Err: err})
			if !keepGoing {
				break
			}
			continue
		}
		cmd.Line = i + 1
		commands = append(commands, cmd)
	}
	return commands, errs.err()
}

// splitCompute splits "dest=comp;jump" into its three fields. Missing dest or jump are returned empty.
func splitCompute(text string) (dest, comp, jump string, err error) {
	rest := text
	if d, r, ok := strings.Cut(text, "="); ok {
		dest = strings.TrimSpace(d)
		if dest == "" {
			return "", "", "", fmt.Errorf("%w: '=' without a destination in %q", ErrFieldSyntax, text)
		}
		rest = r
	}

	comp, jump, hasJump := strings.Cut(rest, ";")
	if hasJump {
		jump = strings.TrimSpace(jump)
		if jump == "" {
			return "", "", "", fmt.Errorf("%w: ';' without a jump in %q", ErrFieldSyntax, text)
		}
		if strings.Contains(jump, ";") {
			return "", "", "", fmt.Errorf("%w: more than one ';' in %q", ErrFieldSyntax, text)
		}
	}

	comp = strings.TrimSpace(comp)
	switch {
	case comp == "":
		return "", "", "", fmt.Errorf("%w: missing computation in %q", ErrFieldSyntax, text)
	case strings.Contains(comp, "="):
		return "", "", "", fmt.Errorf("%w: more than one '=' in %q", ErrFieldSyntax, text)
	}

	return dest, comp, jump, nil
}
