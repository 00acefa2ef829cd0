package main

import (
	"go/ast"
	"go/token"
	"strings"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/nsplint/internal/checker"
	"github.com/sirkon/nsplint/internal/suppress"
)

const doc = `nsplint is a linter that checks digit group widths around underscore separators in numeric literals`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:     "nsplint",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a YAML file with group width overrides")
}

// newChecker builds the checker once per process, every pass shares the same
// width table.
var newChecker = sync.OnceValues(func() (*checker.Checker, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	return checker.New(cfg.Widths), nil
})

func run(pass *analysis.Pass) (any, error) {
	chk, err := newChecker()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.BasicLit)(nil),
	}

	var lits []checker.Literal
	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.BasicLit) // No need to assert check since we only get basic literals.

		text, ok := literalText(n)
		if !ok {
			return
		}

		lits = append(lits, checker.Literal{Text: text, Pos: n.Pos()})
	})

	reports, err := chk.Run(lits)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}

	suppressed := suppress.Scan(pass.Fset, pass.Files)
	for _, rep := range reports {
		if suppressed.Covered(rep.Pos) {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:     rep.Pos,
			Message: rep.Message(),
		})
	}

	return nil, nil
}

// literalText extracts the text to validate from a literal node. Imaginary
// literals shed their trailing i, the digit grouping rules do not care about
// it. Non-numeric literals are skipped.
func literalText(lit *ast.BasicLit) (string, bool) {
	switch lit.Kind {
	case token.INT, token.FLOAT:
		return lit.Value, true
	case token.IMAG:
		return strings.TrimSuffix(lit.Value, "i"), true
	default:
		return "", false
	}
}

func main() {
	singlechecker.Main(Analyzer)
}
