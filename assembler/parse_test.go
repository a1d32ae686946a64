package assembler

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		typ  CommandType
		text string
	}{
		{"", CommandIgnore, ""},
		{"   \t", CommandIgnore, ""},
		{"// just a comment", CommandIgnore, ""},
		{"   // indented comment", CommandIgnore, ""},
		{"@foo", CommandAddress, "foo"},
		{"  @17  // seventeen", CommandAddress, "17"},
		{"@R0//no space", CommandAddress, "R0"},
		{"(LOOP)", CommandLabel, "LOOP"},
		{"  (END) // done", CommandLabel, "END"},
		{"( spaced )", CommandLabel, "spaced"},
		{"D=M", CommandCompute, "D=M"},
		{"0;JMP", CommandCompute, "0;JMP"},
		{"  AM = M + 1 ; JGT // bump", CommandCompute, "AM = M + 1 ; JGT"},
	}

	for _, tc := range tests {
		cmd, err := Classify(tc.line)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.line, err)
			continue
		}
		if cmd.Type != tc.typ || cmd.Text != tc.text {
			t.Errorf("%q: got %s %q, want %s %q", tc.line, cmd.Type, cmd.Text, tc.typ, tc.text)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	for _, line := range []string{"@", "  @   // nothing", "()", "(  )", "(LOOP", "(LOOP) D=M"} {
		_, err := Classify(line)
		if !errors.Is(err, ErrClassification) {
			t.Errorf("%q: expected ErrClassification, got %v", line, err)
		}
	}
}

func TestParseLinesNumbersLines(t *testing.T) {
	cmds, err := parseLines([]string{"// header", "", "@1", "(X)", "D=A"}, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{1, 2, 3, 4, 5}
	for i, c := range cmds {
		if c.Line != want[i] {
			t.Errorf("command %d has line %d, want %d", i, c.Line, want[i])
		}
	}
}

func TestSplitCompute(t *testing.T) {
	tests := []struct {
		text, dest, comp, jump string
	}{
		{"D=D+1;JGT", "D", "D+1", "JGT"},
		{"0;JMP", "", "0", "JMP"},
		{"M=D", "M", "D", ""},
		{"D", "", "D", ""},
		{" AMD = D | M ; JNE ", "AMD", "D | M", "JNE"},
	}

	for _, tc := range tests {
		dest, comp, jump, err := splitCompute(tc.text)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.text, err)
			continue
		}
		if dest != tc.dest || comp != tc.comp || jump != tc.jump {
			t.Errorf("%q: got (%q, %q, %q), want (%q, %q, %q)",
				tc.text, dest, comp, jump, tc.dest, tc.comp, tc.jump)
		}
	}
}

func TestSplitComputeErrors(t *testing.T) {
	for _, text := range []string{"=D", " = D;JMP", "D=", "D=;JMP", ";JMP", "D;", "A=D=M", "0;JMP;JMP"} {
		_, _, _, err := splitCompute(text)
		if !errors.Is(err, ErrFieldSyntax) {
			t.Errorf("%q: expected ErrFieldSyntax, got %v", text, err)
		}
	}
}
