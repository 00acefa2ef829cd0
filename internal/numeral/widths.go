package numeral

import "fmt"

// Widths is the group-width table: the required digit group size per family.
// A table is fixed once a checker is constructed over it; the fields stay
// exported so hosts can override the stock values.
type Widths struct {
	Dec      int `yaml:"dec"`
	Bin      int `yaml:"bin"`
	Oct      int `yaml:"oct"`
	Hex      int `yaml:"hex"`
	Point    int `yaml:"point"`
	Exponent int `yaml:"exponent"`
}

// DefaultWidths returns the stock table: decimal digits group by thousands,
// the machine bases by fours, float families by thousands again.
func DefaultWidths() Widths {
	return Widths{
		Dec:      3,
		Bin:      4,
		Oct:      4,
		Hex:      4,
		Point:    3,
		Exponent: 3,
	}
}

// Of resolves the required group width for a family.
func (w Widths) Of(f Family) int {
	switch f {
	case Decimal:
		return w.Dec
	case Binary:
		return w.Bin
	case Octal:
		return w.Oct
	case Hexadecimal:
		return w.Hex
	case PointFloat:
		return w.Point
	case ExponentFloat:
		return w.Exponent
	default:
		return 0
	}
}

// Validate checks every width is usable as a group size.
func (w Widths) Validate() error {
	for _, v := range []struct {
		family Family
		width  int
	}{
		{Decimal, w.Dec},
		{Binary, w.Bin},
		{Octal, w.Oct},
		{Hexadecimal, w.Hex},
		{PointFloat, w.Point},
		{ExponentFloat, w.Exponent},
	} {
		if v.width < 1 {
			return fmt.Errorf("group width for %s literals must be positive, got %d", v.family, v.width)
		}
	}

	return nil
}
