// Package query filters unit summaries with boolean expressions such as
//
//	kind == "block" && parts > 1
//	width > 120 || "e|" not in prefixes
//
// Expressions see the fields kind, line, lanes, width, parts and prefixes
// of a reflow.Summary.
package query

import (
	"errors"
	"fmt"

	"github.com/signadot/tabflow/reflow"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

type Filter struct {
	src     string
	program *vm.Program
}

func env(s reflow.Summary) map[string]any {
	prefixes := s.Prefixes
	if prefixes == nil {
		prefixes = []string{}
	}
	return map[string]any{
		"kind":     s.Kind,
		"line":     s.Line,
		"lanes":    s.Lanes,
		"width":    s.Width,
		"parts":    s.Parts,
		"prefixes": prefixes,
	}
}

// Compile compiles src. The expression must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(env(reflow.Summary{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates the filter against s. A nil filter matches everything.
func (f *Filter) Match(s reflow.Summary) (bool, error) {
	if f == nil {
		return true, nil
	}
	res, err := vm.Run(f.program, env(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q at line %d: %w", ErrQuery, f.src, s.Line, err)
	}
	return res.(bool), nil
}
