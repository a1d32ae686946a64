package assembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/hack/assembler"
)

func TestPredefinedSymbols(t *testing.T) {
	want := map[string]int{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5, "R6": 6, "R7": 7,
		"R8": 8, "R9": 9, "R10": 10, "R11": 11, "R12": 12, "R13": 13, "R14": 14, "R15": 15,
		"SCREEN": 16384, "KBD": 24576,
	}

	st := assembler.NewSymbolTable()
	if st.Len() != len(want) {
		t.Errorf("fresh table has %d entries, want %d", st.Len(), len(want))
	}
	for name, addr := range want {
		if !st.Contains(name) {
			t.Errorf("%s missing", name)
			continue
		}
		got, err := st.Address(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if got != addr {
			t.Errorf("%s = %d, want %d", name, got, addr)
		}
	}
}

func TestSymbolsAreCaseSensitive(t *testing.T) {
	st := assembler.NewSymbolTable()
	if st.Contains("sp") || st.Contains("screen") {
		t.Error("lower-case names must not match predefined symbols")
	}
}

func TestAddEntry(t *testing.T) {
	st := assembler.NewSymbolTable()

	st.AddEntry("LOOP", 7)
	st.AddEntry("LOOP", 7)
	if got, _ := st.Address("LOOP"); got != 7 {
		t.Errorf("after adding twice LOOP = %d, want 7", got)
	}

	st.AddEntry("LOOP", 12)
	if got, _ := st.Address("LOOP"); got != 12 {
		t.Errorf("after overwrite LOOP = %d, want 12", got)
	}

	st.AddEntry("SCREEN", 1)
	if got, _ := st.Address("SCREEN"); got != 1 {
		t.Errorf("predefined symbols can be overwritten, got %d", got)
	}
}

func TestAddressNotFound(t *testing.T) {
	st := assembler.NewSymbolTable()
	_, err := st.Address("nowhere")
	if !errors.Is(err, assembler.ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestSymbolsOrder(t *testing.T) {
	st := assembler.NewSymbolTable()
	st.AddEntry("END", 100)

	list := st.Symbols()
	if len(list) != st.Len() {
		t.Fatalf("Symbols returned %d entries, table has %d", len(list), st.Len())
	}
	if list[0].Name != "R0" || list[1].Name != "SP" {
		t.Errorf("address 0 should list R0 then SP, got %s, %s", list[0].Name, list[1].Name)
	}
	for i := 1; i < len(list); i++ {
		if list[i].Address < list[i-1].Address {
			t.Fatalf("entries out of order at %d: %v after %v", i, list[i], list[i-1])
		}
	}
	if last := list[len(list)-1]; last.Name != "KBD" {
		t.Errorf("last entry is %v, want KBD", last)
	}
}
