package contract

import (
	"strings"

	"github.com/syssam/solgen"
)

// Visibility of a function.
type Visibility string

// Function visibilities.
const (
	Public   Visibility = "public"
	External Visibility = "external"
	Internal Visibility = "internal"
	Private  Visibility = "private"
)

// Mutability of a function. The zero value is non-payable.
type Mutability string

// State mutabilities.
const (
	NonPayable Mutability = ""
	Payable    Mutability = "payable"
	View       Mutability = "view"
	Pure       Mutability = "pure"
)

// Argument is a function or constructor parameter.
type Argument struct {
	Name     string
	Type     string
	Location string     // "memory", "calldata", "storage" or empty
	TypeRef  *Reference // set when the type is itself a vendored contract
}

// TypeName returns the declared type, preferring the referenced contract name.
func (a Argument) TypeName() string {
	if a.TypeRef != nil {
		return a.TypeRef.Name
	}
	return a.Type
}

// Signature describes a callable contributed by one or more modules.
// Its identity is the name plus the ordered parameter types.
type Signature struct {
	Name       string
	Kind       Visibility
	Mutability Mutability
	Args       []Argument
	Returns    []string
	// Required marks functions that must be restated even with a single
	// provider, e.g. abstract declarations.
	Required bool
}

// ID returns the identity of the signature, e.g. "_burn(uint256)".
func (s Signature) ID() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, a := range s.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.TypeName())
	}
	b.WriteByte(')')
	return b.String()
}

// OverrideEntry is the set of parents contributing a conflicting declaration
// of one signature, in registration order.
type OverrideEntry struct {
	Providers []Reference
}

func (e *OverrideEntry) has(ref Reference) bool {
	for _, p := range e.Providers {
		if p == ref {
			return true
		}
	}
	return false
}

// Function is a signature declared in the generated contract.
type Function struct {
	Signature
	// Override is nil for functions introduced by the contract itself.
	Override  *OverrideEntry
	Modifiers []string
	Code      []string
	// Final is set when the body was replaced through SetFunctionBody; no
	// call to the base chain is appended.
	Final bool
}

// Providers returns the current providers, or nil.
func (f *Function) Providers() []Reference {
	if f.Override == nil {
		return nil
	}
	return f.Override.Providers
}

// Functions is a per-kind catalog of signatures keyed by a short name.
type Functions map[string]Signature

// DefineFunctions builds a catalog. Entries without a Name take their key.
func DefineFunctions(defs map[string]Signature) Functions {
	fns := make(Functions, len(defs))
	for key, sig := range defs {
		if sig.Name == "" {
			sig.Name = key
		}
		fns[key] = sig
	}
	return fns
}

// Get returns the signature registered under key. Unknown keys are builder
// defects.
func (f Functions) Get(key string) Signature {
	sig, ok := f[key]
	if !ok {
		panic(solgen.NewConfigurationError("", key, "function is not defined in the catalog"))
	}
	return sig
}
