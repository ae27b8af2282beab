//go:build !remote

// Package testcheck runs the static analyzers every package in this
// module is held to.
package testcheck

import (
	"testing"

	errname "github.com/Antonboom/errname/pkg/analyzer"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/atomicalign"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/gofix"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/reflectvaluecompare"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/unusedwrite"
	"golang.org/x/tools/go/analysis/passes/waitgroup"

	"lesiw.io/checker"
	"lesiw.io/errcheck/errcheck"
	"lesiw.io/linelen"
	"lesiw.io/plscheck/deprecated"
	"lesiw.io/plscheck/embeddirective"
	"lesiw.io/plscheck/fillreturns"
	"lesiw.io/plscheck/infertypeargs"
	"lesiw.io/plscheck/maprange"
	"lesiw.io/plscheck/modernize"
	"lesiw.io/plscheck/nonewvars"
	"lesiw.io/plscheck/noresultvalues"
	"lesiw.io/plscheck/recursiveiter"
	"lesiw.io/plscheck/simplifycompositelit"
	"lesiw.io/plscheck/simplifyrange"
	"lesiw.io/plscheck/simplifyslice"
	"lesiw.io/plscheck/unusedfunc"
	"lesiw.io/plscheck/unusedparams"
	"lesiw.io/plscheck/unusedvariable"
	"lesiw.io/plscheck/yield"
	"lesiw.io/tidytypes"
)

// Correctness analyzers catch code that misbehaves at run time.
var correctness = []*analysis.Analyzer{
	atomicalign.Analyzer,
	copylock.Analyzer,
	deepequalerrors.Analyzer,
	errcheck.Analyzer,
	nilness.Analyzer,
	recursiveiter.Analyzer,
	reflectvaluecompare.Analyzer,
	sortslice.Analyzer,
	unusedwrite.Analyzer,
	waitgroup.Analyzer,
	yield.Analyzer,
}

// Style analyzers keep the code uniform.
var style = []*analysis.Analyzer{
	composite.Analyzer,
	deprecated.Analyzer,
	embeddirective.Analyzer,
	fillreturns.Analyzer,
	gofix.Analyzer,
	infertypeargs.Analyzer,
	linelen.Analyzer,
	maprange.Analyzer,
	modernize.Analyzer,
	nonewvars.Analyzer,
	noresultvalues.Analyzer,
	simplifycompositelit.Analyzer,
	simplifyrange.Analyzer,
	simplifyslice.Analyzer,
	tidytypes.Analyzer,
	unusedfunc.Analyzer,
	unusedparams.Analyzer,
	unusedvariable.Analyzer,
}

// Run runs every analyzer against the packages under test.
func Run(t *testing.T) {
	all := append([]*analysis.Analyzer{errname.New()}, correctness...)
	checker.Run(t, append(all, style...)...)
}
