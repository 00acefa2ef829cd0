package nspcodes

import (
	"fmt"

	"github.com/sirkon/nsplint/internal/numeral"
)

// Code represents an nsplint diagnostic code (NSP-series).
type Code int

const (
	codeInvalid Code = iota

	NSP001Decimal
	NSP011Binary
	NSP021Octal
	NSP031Hexadecimal
	NSP041PointFloat
	NSP051ExponentFloat
)

// Of resolves the code reserved for a numeral family.
func Of(f numeral.Family) Code {
	switch f {
	case numeral.Decimal:
		return NSP001Decimal
	case numeral.Binary:
		return NSP011Binary
	case numeral.Octal:
		return NSP021Octal
	case numeral.Hexadecimal:
		return NSP031Hexadecimal
	case numeral.PointFloat:
		return NSP041PointFloat
	case numeral.ExponentFloat:
		return NSP051ExponentFloat
	default:
		return codeInvalid
	}
}

// String returns the bare code identifier.
// Example: "NSP001"
func (c Code) String() string {
	switch c {
	case NSP001Decimal:
		return "NSP001"
	case NSP011Binary:
		return "NSP011"
	case NSP021Octal:
		return "NSP021"
	case NSP031Hexadecimal:
		return "NSP031"
	case NSP041PointFloat:
		return "NSP041"
	case NSP051ExponentFloat:
		return "NSP051"
	default:
		return fmt.Sprintf("code-unknown(%d)", int(c))
	}
}

// Message returns the diagnostic text emitted for a violation of the code.
// Example: "NSP001 DEC Invalid"
func (c Code) Message() string {
	switch c {
	case NSP001Decimal:
		return "NSP001 DEC Invalid"
	case NSP011Binary:
		return "NSP011 BIN Invalid"
	case NSP021Octal:
		return "NSP021 OCT Invalid"
	case NSP031Hexadecimal:
		return "NSP031 HEX Invalid"
	case NSP041PointFloat:
		return "NSP041 POINTFLOAT Invalid"
	case NSP051ExponentFloat:
		return "NSP051 EXPONENTFLOAT Invalid"
	default:
		return fmt.Sprintf("code-unknown(%d) Invalid", int(c))
	}
}

// Description returns the human-readable explanation of the code.
func (c Code) Description() string {
	switch c {
	case NSP001Decimal:
		return "Decimal digit groups must hold 3 digits by default, only the leading group may be shorter."
	case NSP011Binary:
		return "Binary digit groups must hold 4 digits by default, only the leading group may be shorter."
	case NSP021Octal:
		return "Octal digit groups must hold 4 digits by default, only the leading group may be shorter."
	case NSP031Hexadecimal:
		return "Hexadecimal digit groups must hold 4 digits by default, only the leading group may be shorter."
	case NSP041PointFloat:
		return "Point float grouping is declared but has no validation yet."
	case NSP051ExponentFloat:
		return "Exponent float grouping is declared but has no validation yet."
	default:
		return fmt.Sprintf("unknown-code(%d)", int(c))
	}
}
