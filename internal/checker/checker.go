// Package checker ties classification and grouping validation together: it
// takes numeric literals as they were written in source and produces one
// report per literal whose separators break the group width of its family.
package checker

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/sirkon/nsplint/internal/grouping"
	"github.com/sirkon/nsplint/internal/nspcodes"
	"github.com/sirkon/nsplint/internal/numeral"
)

// ErrUnsupportedFamily signals a literal of a family the checker declares but
// cannot validate yet. Callers must not treat such literals as clean.
var ErrUnsupportedFamily = errors.New("numeral family validation is not implemented")

// Literal is a numeric literal token, text exactly as written in source,
// separators and base prefix included.
type Literal struct {
	Text string
	Pos  token.Pos
}

// Report is a single grouping violation. Pos points at the byte where the
// violation becomes evident, not at the literal start.
type Report struct {
	Pos  token.Pos
	Code nspcodes.Code
}

// Message returns the diagnostic text of the report.
func (r Report) Message() string {
	return r.Code.Message()
}

// rule binds a family to its group width, the prefix length to strip before
// validation, and the code to report under.
type rule struct {
	width  int
	prefix int
	code   nspcodes.Code
	stub   bool
}

// Checker validates digit grouping of numeric literals against a fixed group
// width table. Safe for concurrent use, it holds no mutable state.
type Checker struct {
	rules map[numeral.Family]rule
}

// New builds a checker over the given width table. Every family gets its rule
// here, width and code resolved from the family itself, so a literal can
// never dispatch into a missing handler.
func New(widths numeral.Widths) *Checker {
	rules := make(map[numeral.Family]rule)
	for _, f := range []numeral.Family{
		numeral.Decimal,
		numeral.Binary,
		numeral.Octal,
		numeral.Hexadecimal,
		numeral.PointFloat,
		numeral.ExponentFloat,
	} {
		r := rule{
			width: widths.Of(f),
			code:  nspcodes.Of(f),
		}
		switch f {
		case numeral.Binary, numeral.Octal, numeral.Hexadecimal:
			r.prefix = 2
		case numeral.PointFloat, numeral.ExponentFloat:
			r.stub = true
		}

		rules[f] = r
	}

	return &Checker{rules: rules}
}

// Check validates one literal. The boolean tells whether a report was
// produced. A non-nil error means the literal could not be validated at all,
// stub families wrap ErrUnsupportedFamily.
func (c *Checker) Check(lit Literal) (Report, bool, error) {
	family := numeral.Classify(lit.Text)

	r, ok := c.rules[family]
	if !ok {
		return Report{}, false, fmt.Errorf("no rule for %s literal %q", family, lit.Text)
	}
	if r.stub {
		return Report{}, false, fmt.Errorf("check %s literal %q: %w", family, lit.Text, ErrUnsupportedFamily)
	}

	body := lit.Text[r.prefix:]
	off := grouping.InvalidAt(body, r.width)
	if off < 0 {
		return Report{}, false, nil
	}

	return Report{
		Pos:  lit.Pos + token.Pos(r.prefix+off),
		Code: r.code,
	}, true, nil
}

// Run validates literals in the given order and collects their reports. The
// first literal of an unvalidated family aborts the whole run, a silent skip
// there would pass broken floats off as clean.
func (c *Checker) Run(lits []Literal) ([]Report, error) {
	var reports []Report
	for _, lit := range lits {
		rep, bad, err := c.Check(lit)
		if err != nil {
			return nil, err
		}
		if !bad {
			continue
		}

		reports = append(reports, rep)
	}

	return reports, nil
}
