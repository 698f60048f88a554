package contract

import (
	"fmt"
	"slices"

	"github.com/syssam/solgen"
)

// Builder assembles a Contract. It is not safe for concurrent use; each
// generation task owns its own Builder.
type Builder struct {
	c         *Contract
	functions map[string]*Function
	variables map[string]struct{}
}

// NewBuilder returns a Builder for a contract with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		c: &Contract{
			Name:    name,
			License: DefaultLicense,
			Pragma:  DefaultPragma,
		},
		functions: make(map[string]*Function),
		variables: make(map[string]struct{}),
	}
}

// Contract returns the model built so far.
func (b *Builder) Contract() *Contract { return b.c }

// Name returns the contract name.
func (b *Builder) Name() string { return b.c.Name }

// HasParent reports whether a parent with the given name is attached.
func (b *Builder) HasParent(name string) bool { return b.c.HasParent(name) }

// ParentNames returns the attached parent names in attachment order.
func (b *Builder) ParentNames() []string { return b.c.ParentNames() }

// AddParent appends ref to the parent list, binding its constructor call to
// params. It reports false if ref was already attached, in which case the
// existing position is kept and the parameters are replaced.
func (b *Builder) AddParent(ref Reference, params ...Value) bool {
	if i := b.c.parentIndex(ref); i >= 0 {
		b.c.Parents[i].Params = slices.Clone(params)
		return false
	}
	for _, p := range b.c.Parents {
		if p.Contract.Name == ref.Name {
			b.fail("", fmt.Sprintf("parent %s attached from both %s and %s", ref.Name, p.Contract.Path, ref.Path))
		}
	}
	b.c.Parents = append(b.c.Parents, Parent{Contract: ref, Params: slices.Clone(params)})
	return true
}

// AddOverride records provider as a contributor of sig. The provider must
// already be attached as a parent.
func (b *Builder) AddOverride(provider Reference, sig Signature) {
	if b.c.parentIndex(provider) < 0 {
		b.fail(sig.ID(), fmt.Sprintf("override provider %s is not an attached parent", provider.Name))
	}
	fn := b.addFunction(sig)
	if fn.Override == nil {
		fn.Override = &OverrideEntry{}
	}
	if !fn.Override.has(provider) {
		fn.Override.Providers = append(fn.Override.Providers, provider)
	}
}

// RemoveOverride deletes provider from the providers of sig. It is used by
// finishing passes once a combination of modules makes an entry redundant.
func (b *Builder) RemoveOverride(provider Reference, sig Signature) {
	fn, ok := b.functions[sig.ID()]
	if !ok || fn.Override == nil {
		b.fail(sig.ID(), "no override registered")
	}
	i := slices.Index(fn.Override.Providers, provider)
	if i < 0 {
		b.fail(sig.ID(), fmt.Sprintf("%s is not a registered provider", provider.Name))
	}
	fn.Override.Providers = slices.Delete(fn.Override.Providers, i, i+1)
}

// SetFunctionBody replaces the body of sig with code. No call to the base
// chain is emitted for the function afterwards.
func (b *Builder) SetFunctionBody(code []string, sig Signature) {
	fn := b.addFunction(sig)
	fn.Code = slices.Clone(code)
	fn.Final = true
}

// AddFunctionCode appends a statement to the body of sig.
func (b *Builder) AddFunctionCode(code string, sig Signature) {
	fn := b.addFunction(sig)
	if fn.Final {
		b.fail(sig.ID(), "function has a final body")
	}
	fn.Code = append(fn.Code, code)
}

// AddModifier attaches a modifier to sig once.
func (b *Builder) AddModifier(modifier string, sig Signature) {
	fn := b.addFunction(sig)
	if !slices.Contains(fn.Modifiers, modifier) {
		fn.Modifiers = append(fn.Modifiers, modifier)
	}
}

// SetMutability changes the state mutability of sig.
func (b *Builder) SetMutability(sig Signature, m Mutability) {
	b.addFunction(sig).Mutability = m
}

// AddVariable declares a state variable and reports whether it is new.
func (b *Builder) AddVariable(code string) bool {
	if _, ok := b.variables[code]; ok {
		return false
	}
	b.variables[code] = struct{}{}
	b.c.Variables = append(b.c.Variables, code)
	return true
}

// AddConstructorArgument appends a constructor parameter.
func (b *Builder) AddConstructorArgument(arg Argument) {
	for _, a := range b.c.ConstructorArgs {
		if a.Name == arg.Name {
			b.fail("constructor", fmt.Sprintf("duplicate constructor argument %s", arg.Name))
		}
	}
	b.c.ConstructorArgs = append(b.c.ConstructorArgs, arg)
}

// AddConstructorCode appends a statement to the constructor body.
func (b *Builder) AddConstructorCode(code string) {
	b.c.ConstructorCode = append(b.c.ConstructorCode, code)
}

// AddUsing adds a "using library for target" directive once.
func (b *Builder) AddUsing(library Reference, target string) {
	u := Using{Library: library, For: target}
	if !slices.Contains(b.c.Using, u) {
		b.c.Using = append(b.c.Using, u)
	}
}

// AddImport imports ref without attaching it as a parent.
func (b *Builder) AddImport(ref Reference) {
	if !slices.Contains(b.c.Imports, ref) {
		b.c.Imports = append(b.c.Imports, ref)
	}
}

// SetUpgradeable marks the contract as deployed behind a proxy.
func (b *Builder) SetUpgradeable(upgradeable bool) { b.c.Upgradeable = upgradeable }

// SetLicense sets the SPDX license identifier. Empty keeps the default.
func (b *Builder) SetLicense(license string) {
	if license != "" {
		b.c.License = license
	}
}

// SetSecurityContact sets the security contact natspec tag.
func (b *Builder) SetSecurityContact(contact string) { b.c.SecurityContact = contact }

// SetInfo sets the license and security contact in one call.
func (b *Builder) SetInfo(license, securityContact string) {
	b.SetLicense(license)
	b.SetSecurityContact(securityContact)
}

// SetPragma sets the compiler version constraint.
func (b *Builder) SetPragma(pragma string) {
	if pragma != "" {
		b.c.Pragma = pragma
	}
}

// addFunction returns the function declared for sig, declaring it on first use.
func (b *Builder) addFunction(sig Signature) *Function {
	id := sig.ID()
	if fn, ok := b.functions[id]; ok {
		return fn
	}
	sig.Args = slices.Clone(sig.Args)
	sig.Returns = slices.Clone(sig.Returns)
	fn := &Function{Signature: sig}
	b.functions[id] = fn
	b.c.Functions = append(b.c.Functions, fn)
	return fn
}

func (b *Builder) fail(function, message string) {
	panic(solgen.NewConfigurationError(b.c.Name, function, message))
}
