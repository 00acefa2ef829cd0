// Package grouping validates digit group widths around underscore separators.
//
// A literal body splits on underscores into segments. The leading segment may
// hold anywhere from one digit up to the group width, every later segment must
// hold exactly the group width, and no segment may be empty. So with width 3
// "1_000" and "100" pass while "1000_000", "10_00" and "1000000" do not: the
// last one is a single seven digit segment and a segment can never exceed the
// width, separated or not.
//
// InvalidAt reports the byte offset where a violation becomes evident:
//
//   - an empty segment reports the separator or boundary exposing it,
//     so "1__00" reports 2 and "_100" reports 0;
//   - an over-wide segment reports the first excess digit, the segment
//     start plus the width;
//   - an under-wide non-leading segment reports its terminator, the
//     next separator or the end of the body.
package grouping

// Separator splits a literal body into digit groups.
const Separator = '_'

// InvalidAt returns the offset of the first grouping violation in body, or -1
// when every segment obeys width. The body is the literal text with any base
// prefix already stripped.
func InvalidAt(body string, width int) int {
	start := 0
	leading := true
	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] != Separator {
			continue
		}

		n := i - start
		switch {
		case n == 0:
			return i
		case n > width:
			return start + width
		case n < width && !leading:
			return i
		}

		leading = false
		start = i + 1
	}

	return -1
}
