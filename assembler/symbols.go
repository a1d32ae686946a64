package assembler

import (
	"fmt"
	"sort"

	"github.com/Urethramancer/hack/cpu"
)

// Symbol is one name/address pair of a SymbolTable.
type Symbol struct {
	Name    string
	Address int
}

// SymbolTable maps symbol names to addresses. Names are case-sensitive.
type SymbolTable struct {
	entries map[string]int
}

// NewSymbolTable returns a table holding only the predefined symbols.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: cpu.Predefined()}
}

// AddEntry binds name to address, replacing any earlier binding.
func (st *SymbolTable) AddEntry(name string, address int) {
	st.entries[name] = address
}

// Contains reports whether name is bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.entries[name]
	return ok
}

// Address returns the address bound to name.
func (st *SymbolTable) Address(name string) (int, error) {
	addr, ok := st.entries[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrSymbolNotFound)
	}

	return addr, nil
}

// Len returns the number of bound names.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// Symbols lists every entry ordered by address, then name.
func (st *SymbolTable) Symbols() []Symbol {
	list := make([]Symbol, 0, len(st.entries))
	for name, addr := range st.entries {
		list = append(list, Symbol{Name: name, Address: addr})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Address != list[j].Address {
			return list[i].Address < list[j].Address
		}
		return list[i].Name < list[j].Name
	})
	return list
}
