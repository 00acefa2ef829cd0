// Package suppress implements nsplint suppression directives.
//
// Three comment directives control reporting:
//
//	//nsplint:ignore   suppresses findings on its own line
//	//nsplint:off      suppresses findings from here on
//	//nsplint:on       ends the nearest open off region
//
// Directives follow the Go pragma convention: no space after the slashes, so
// "// nsplint:off" is prose and changes nothing. An off region left open runs
// to the end of its file. Trailing text after a directive is free form,
// "//nsplint:ignore migrated table id" reads naturally.
package suppress

import (
	"go/ast"
	"go/token"
	"sort"
	"strings"
)

const (
	directiveIgnore = "//nsplint:ignore"
	directiveOff    = "//nsplint:off"
	directiveOn     = "//nsplint:on"
)

// Scan collects suppression directives from the files of a single pass and
// builds the coverage index over them.
func Scan(fset *token.FileSet, files []*ast.File) *Index {
	var spans []*span
	for _, f := range files {
		spans = append(spans, fileSpans(fset, f)...)
	}
	if len(spans) == 0 {
		return &Index{}
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := merged[len(merged)-1]
		if s.start <= last.end+1 {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}

		merged = append(merged, s)
	}

	return newIndex(merged)
}

func fileSpans(fset *token.FileSet, f *ast.File) []*span {
	tf := fset.File(f.Pos())
	if tf == nil {
		return nil
	}

	var spans []*span
	open := token.NoPos
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			switch directiveOf(c.Text) {
			case directiveIgnore:
				line := tf.Line(c.Slash)
				spans = append(spans, &span{
					start: tf.LineStart(line),
					end:   lineEnd(tf, line),
				})
			case directiveOff:
				if open == token.NoPos {
					open = c.Slash
				}
			case directiveOn:
				if open != token.NoPos {
					spans = append(spans, &span{start: open, end: c.End()})
					open = token.NoPos
				}
			}
		}
	}
	if open != token.NoPos {
		spans = append(spans, &span{start: open, end: tf.Pos(tf.Size())})
	}

	return spans
}

// directiveOf extracts the directive a comment carries, "" for plain prose.
func directiveOf(text string) string {
	for _, d := range []string{directiveIgnore, directiveOff, directiveOn} {
		if text == d || strings.HasPrefix(text, d+" ") {
			return d
		}
	}

	return ""
}

func lineEnd(tf *token.File, line int) token.Pos {
	if line < tf.LineCount() {
		return tf.LineStart(line+1) - 1
	}

	return tf.Pos(tf.Size())
}
