package contract

import (
	"strconv"
	"strings"
)

// Reference identifies a vendored module by contract name and import path.
type Reference struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// String returns the contract name.
func (r Reference) String() string { return r.Name }

// Value is a literal expression bound to a constructor call at generation
// time.
type Value interface {
	// Expr returns the Solidity source of the value.
	Expr() string
}

// String is a Solidity string literal.
type String string

// Expr implements Value.
func (s String) Expr() string { return quote(string(s)) }

// Number is an integer literal.
type Number int64

// Expr implements Value.
func (n Number) Expr() string { return strconv.FormatInt(int64(n), 10) }

// Lit is a raw expression printed as is, e.g. "msg.sender" or "_token".
type Lit string

// Expr implements Value.
func (l Lit) Expr() string { return string(l) }

// Note is a value followed by an explanatory comment.
type Note struct {
	Value Value
	Note  string
}

// Expr implements Value.
func (n Note) Expr() string { return n.Value.Expr() + " /* " + n.Note + " */" }

// Parent is a module attached to the contract together with the arguments
// its constructor is invoked with.
type Parent struct {
	Contract Reference
	Params   []Value
}

// Using is a "using Library for Type;" directive.
type Using struct {
	Library Reference
	For     string
}

// quote renders s as a double-quoted Solidity string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
