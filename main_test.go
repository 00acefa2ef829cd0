package main

import (
	"go/ast"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "a")
}

func TestAnalyzerSuppression(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "suppressed")
}

func TestLiteralText(t *testing.T) {
	tests := []struct {
		name string
		lit  *ast.BasicLit
		want string
		ok   bool
	}{
		{
			name: "integer passes through",
			lit:  &ast.BasicLit{Kind: token.INT, Value: "1_000"},
			want: "1_000",
			ok:   true,
		},
		{
			name: "float passes through",
			lit:  &ast.BasicLit{Kind: token.FLOAT, Value: "0x1p-2"},
			want: "0x1p-2",
			ok:   true,
		},
		{
			name: "imaginary sheds the suffix",
			lit:  &ast.BasicLit{Kind: token.IMAG, Value: "10_00i"},
			want: "10_00",
			ok:   true,
		},
		{
			name: "string skipped",
			lit:  &ast.BasicLit{Kind: token.STRING, Value: `"1000_000"`},
		},
		{
			name: "rune skipped",
			lit:  &ast.BasicLit{Kind: token.CHAR, Value: "'_'"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := literalText(tt.lit)
			if ok != tt.ok {
				t.Fatalf("literalText() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("literalText() = %q, want %q", got, tt.want)
			}
		})
	}
}
