package gen

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over the fields of a combination.
// The kind is bound to the variable kind; fields absent from the
// combination evaluate to nil.
//
//	kind == "ERC20" && mintable && access != "roles"
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles expression.
func NewFilter(expression string) (*Filter, error) {
	if expression == "" {
		return nil, NewConfigError("Where", nil, "expression must not be empty")
	}
	program, err := expr.Compile(expression,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, NewConfigError("Where", expression, err.Error())
	}
	return &Filter{source: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.source }

// Match reports whether the fields of a kind satisfy the filter. A nil
// filter matches everything.
func (f *Filter) Match(kind Kind, fields map[string]any) (bool, error) {
	if f == nil {
		return true, nil
	}
	env := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		env[k] = v
	}
	env["kind"] = string(kind)
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("gen: evaluate %q: %w", f.source, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}
