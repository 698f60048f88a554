// Package printer renders a contract model as Solidity source text.
//
// Printing is a pure function of the model: the same model always yields
// byte-identical output. Parents are emitted in attachment order and are
// never reordered.
package printer

import (
	"fmt"
	"strings"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
)

const (
	indent = "    "
	// maxHeading is the number of heading characters above which modifiers
	// move to their own lines.
	maxHeading = 72

	overridesComment = "// The following functions are overrides required by Solidity."
)

// Option configures the printer.
type Option func(*printer)

// WithTransformImport rewrites every import path before it is printed,
// e.g. to point at bundled files instead of package paths.
func WithTransformImport(fn func(string) string) Option {
	return func(p *printer) {
		if fn != nil {
			p.transformImport = fn
		}
	}
}

type printer struct {
	c               *contract.Contract
	transformImport func(string) string
}

// Print renders c. It fails with a *solgen.ConfigurationError if an
// override entry has no providers or names a parent that is not attached.
func Print(c *contract.Contract, opts ...Option) (string, error) {
	p := &printer{c: c, transformImport: func(s string) string { return s }}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.check(); err != nil {
		return "", err
	}
	plain, overrides := p.functions()
	var body [][]string
	if len(c.Using) > 0 {
		body = append(body, p.using())
	}
	body = append(body, c.Variables)
	body = append(body, p.constructor()...)
	body = append(body, plain...)
	if len(overrides) > 0 {
		body = append(body, []string{overridesComment})
		body = append(body, overrides...)
	}
	lines := spaceBetween(
		p.header(),
		p.imports(),
		append(append(p.natspec(), p.declaration()+" {"), append(indentLines(spaceBetween(body...)), "}")...),
	)
	return strings.Join(lines, "\n") + "\n", nil
}

// check validates the override entries against the parent list.
func (p *printer) check() error {
	for _, fn := range p.c.Functions {
		if fn.Override == nil {
			continue
		}
		if len(fn.Override.Providers) == 0 {
			return solgen.NewConfigurationError(p.c.Name, fn.ID(), "override entry has no providers")
		}
		for _, ref := range fn.Override.Providers {
			if !p.attached(ref) {
				return solgen.NewConfigurationError(p.c.Name, fn.ID(),
					fmt.Sprintf("override provider %s is not an attached parent", ref.Name))
			}
		}
	}
	return nil
}

func (p *printer) attached(ref contract.Reference) bool {
	for _, parent := range p.c.Parents {
		if parent.Contract == ref {
			return true
		}
	}
	return false
}

func (p *printer) header() []string {
	license, pragma := p.c.License, p.c.Pragma
	if license == "" {
		license = contract.DefaultLicense
	}
	if pragma == "" {
		pragma = contract.DefaultPragma
	}
	return []string{
		"// SPDX-License-Identifier: " + license,
		"pragma solidity " + pragma + ";",
	}
}

func (p *printer) imports() []string {
	paths := p.c.ImportPaths()
	lines := make([]string, len(paths))
	for i, path := range paths {
		lines[i] = fmt.Sprintf("import %q;", p.transformImport(path))
	}
	return lines
}

func (p *printer) natspec() []string {
	if p.c.SecurityContact == "" {
		return nil
	}
	return []string{"/// @custom:security-contact " + p.c.SecurityContact}
}

func (p *printer) declaration() string {
	decl := "contract " + p.c.Name
	if len(p.c.Parents) == 0 {
		return decl
	}
	names := make([]string, len(p.c.Parents))
	for i, parent := range p.c.Parents {
		names[i] = p.c.TransformName(parent.Contract)
	}
	return decl + " is " + strings.Join(names, ", ")
}

func (p *printer) using() []string {
	lines := make([]string, len(p.c.Using))
	for i, u := range p.c.Using {
		lib := p.c.TransformName(u.Library)
		target := u.For
		if rest, ok := strings.CutPrefix(target, u.Library.Name+"."); ok {
			target = lib + "." + rest
		}
		lines[i] = fmt.Sprintf("using %s for %s;", lib, target)
	}
	return lines
}

// constructor returns the constructor, and for upgradeable contracts the
// initializer, as separate groups.
func (p *printer) constructor() [][]string {
	args := p.arguments(p.c.ConstructorArgs)
	if !p.c.Upgradeable {
		var calls []string
		for _, parent := range p.c.Parents {
			if len(parent.Params) > 0 {
				calls = append(calls, parent.Contract.Name+"("+values(parent.Params)+")")
			}
		}
		return [][]string{function("constructor", args, calls, p.c.ConstructorCode)}
	}
	groups := [][]string{{
		"/// @custom:oz-upgrades-unsafe-allow constructor",
		"constructor() {",
		indent + "_disableInitializers();",
		"}",
	}}
	var inits []string
	for _, parent := range p.c.Parents {
		if parent.Contract.Name == "Initializable" {
			continue
		}
		inits = append(inits, contract.InitializerName(parent.Contract)+"("+values(parent.Params)+");")
	}
	if len(inits) == 0 && len(p.c.ConstructorCode) == 0 {
		return groups
	}
	code := spaceBetween(inits, p.c.ConstructorCode)
	return append(groups, function("function initialize", args, []string{"initializer", "public"}, code))
}

// functions splits the printable functions into contract-introduced ones
// and overrides, each in declaration order.
func (p *printer) functions() (plain, overrides [][]string) {
	for _, fn := range p.c.Functions {
		lines := p.function(fn)
		if lines == nil {
			continue
		}
		if fn.Override == nil {
			plain = append(plain, lines)
		} else {
			overrides = append(overrides, lines)
		}
	}
	return plain, overrides
}

func (p *printer) function(fn *contract.Function) []string {
	providers := p.c.OrderedProviders(fn)
	if len(providers) == 1 && len(fn.Code) == 0 && len(fn.Modifiers) == 0 && !fn.Required && !fn.Final {
		return nil
	}
	modifiers := []string{string(fn.Kind)}
	if fn.Mutability != contract.NonPayable {
		modifiers = append(modifiers, string(fn.Mutability))
	}
	modifiers = append(modifiers, fn.Modifiers...)
	switch {
	case len(providers) == 1:
		modifiers = append(modifiers, "override")
	case len(providers) > 1:
		names := make([]string, len(providers))
		for i, ref := range providers {
			names[i] = p.c.TransformName(ref)
		}
		modifiers = append(modifiers, "override("+strings.Join(names, ", ")+")")
	}
	if len(fn.Returns) > 0 {
		modifiers = append(modifiers, "returns ("+strings.Join(fn.Returns, ", ")+")")
	}
	code := fn.Code
	if len(providers) > 0 && !fn.Final {
		names := make([]string, len(fn.Args))
		for i, a := range fn.Args {
			names[i] = a.Name
		}
		call := "super." + fn.Name + "(" + strings.Join(names, ", ") + ");"
		if len(fn.Returns) > 0 {
			call = "return " + call
		}
		code = append(append([]string(nil), fn.Code...), call)
	}
	return function("function "+fn.Name, p.arguments(fn.Args), modifiers, code)
}

func (p *printer) arguments(args []contract.Argument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		parts := []string{p.c.ArgumentType(a)}
		if a.Location != "" {
			parts = append(parts, a.Location)
		}
		out[i] = strings.Join(append(parts, a.Name), " ")
	}
	return out
}

// function formats a callable with its heading on one line when short
// enough, otherwise with one modifier per indented line.
func function(head string, args, modifiers, code []string) []string {
	size := len(head)
	for _, s := range args {
		size += len(s)
	}
	for _, s := range modifiers {
		size += len(s)
	}
	braces := "{}"
	if len(code) > 0 {
		braces = "{"
	}
	signature := head + "(" + strings.Join(args, ", ") + ")"
	var lines []string
	if size <= maxHeading {
		lines = append(lines, strings.Join(append(append([]string{signature}, modifiers...), braces), " "))
	} else {
		lines = append(lines, signature)
		lines = append(lines, indentLines(modifiers)...)
		lines = append(lines, braces)
	}
	if len(code) > 0 {
		lines = append(lines, indentLines(code)...)
		lines = append(lines, "}")
	}
	return lines
}

func values(vs []contract.Value) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Expr()
	}
	return strings.Join(out, ", ")
}

// spaceBetween joins the non-empty groups with one blank line between them.
func spaceBetween(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, g...)
	}
	return out
}

func indentLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l != "" {
			l = indent + l
		}
		out[i] = l
	}
	return out
}
