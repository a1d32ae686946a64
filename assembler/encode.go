package assembler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Urethramancer/hack/cpu"
)

//
// Field encoders. Each table is closed: text outside it is an error.
//

// Dest returns the 3-bit code of a dest mnemonic. The empty string means no destination.
func Dest(mnemonic string) (string, error) {
	code, err := destCode(mnemonic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03b", code), nil
}

// Jump returns the 3-bit code of a jump mnemonic. The empty string means no jump.
func Jump(mnemonic string) (string, error) {
	code, err := jumpCode(mnemonic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03b", code), nil
}

// Comp returns the 7-bit code of a comp mnemonic. Whitespace is ignored and
// commutative operators accept either operand order.
func Comp(mnemonic string) (string, error) {
	code, err := compCode(mnemonic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%07b", code), nil
}

// AddressLiteral parses text as a non-negative decimal A-instruction value.
// ok is false when text is not a number, in which case it names a symbol.
func AddressLiteral(text string) (value uint16, ok bool, err error) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, true, fmt.Errorf("%w: %s exceeds %d", ErrAddressRange, text, cpu.MaxAddress)
		}
		return 0, false, nil
	}

	if v > cpu.MaxAddress {
		return 0, true, fmt.Errorf("%w: %d exceeds %d", ErrAddressRange, v, cpu.MaxAddress)
	}
	return uint16(v), true, nil
}

func destCode(mnemonic string) (uint16, error) {
	code, ok := cpu.DestCodes[strings.TrimSpace(mnemonic)]
	if !ok {
		return 0, fmt.Errorf("%w: dest %q", ErrUnknownMnemonic, mnemonic)
	}
	return code, nil
}

func jumpCode(mnemonic string) (uint16, error) {
	code, ok := cpu.JumpCodes[strings.TrimSpace(mnemonic)]
	if !ok {
		return 0, fmt.Errorf("%w: jump %q", ErrUnknownMnemonic, mnemonic)
	}
	return code, nil
}

func compCode(mnemonic string) (uint16, error) {
	m := stripSpace(mnemonic)
	if canonical, ok := cpu.CompAliases[m]; ok {
		m = canonical
	}

	code, ok := cpu.CompCodes[m]
	if !ok {
		return 0, fmt.Errorf("%w: comp %q", ErrUnknownMnemonic, mnemonic)
	}
	return code, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// encodeAddress builds an A-instruction word.
func encodeAddress(addr int) (uint16, error) {
	if addr < 0 || addr > cpu.MaxAddress {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrAddressRange, addr, cpu.MaxAddress)
	}
	return uint16(addr), nil
}

// encodeCompute builds a C-instruction word from "dest=comp;jump" text.
func encodeCompute(text string) (uint16, error) {
	dest, comp, jump, err := splitCompute(text)
	if err != nil {
		return 0, err
	}

	c, err := compCode(comp)
	if err != nil {
		return 0, err
	}
	d, err := destCode(dest)
	if err != nil {
		return 0, err
	}
	j, err := jumpCode(jump)
	if err != nil {
		return 0, err
	}

	return cpu.Encode(c, d, j), nil
}
