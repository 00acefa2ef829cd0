package numeral

import (
	"fmt"
	"strings"
)

// Family identifies the numeral form of a literal. It is a pure function of
// the literal text, never of the token kind the tokenizer assigned.
type Family int

const (
	familyInvalid Family = iota

	Decimal
	Binary
	Octal
	Hexadecimal
	PointFloat
	ExponentFloat
)

// Classify determines the family of a numeric literal given exactly as
// written in source, separators and base prefix included.
//
// Base prefixes win over content checks, so "0x1e10" is Hexadecimal even
// though it contains an exponent-looking "e". Decimal is the catch-all,
// every input maps to exactly one family.
func Classify(text string) Family {
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'b', 'B':
			return Binary
		case 'o', 'O':
			return Octal
		case 'x', 'X':
			return Hexadecimal
		}
	}

	if strings.ContainsAny(text, "eE") {
		return ExponentFloat
	}
	if strings.Contains(text, ".") {
		return PointFloat
	}

	return Decimal
}

func (f Family) String() string {
	switch f {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	case PointFloat:
		return "point-float"
	case ExponentFloat:
		return "exponent-float"
	default:
		return fmt.Sprintf("family-invalid(%d)", int(f))
	}
}
