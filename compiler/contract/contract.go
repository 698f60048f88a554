package contract

// Default header values used when a builder does not set them.
const (
	DefaultLicense = "MIT"
	DefaultPragma  = "^0.8.9"
)

// Contract is the finished composition model of one generated contract.
// It is owned by a single generation task and handed read-only to the printer.
type Contract struct {
	Name            string
	License         string
	SecurityContact string
	Pragma          string
	Upgradeable     bool

	// Parents in attachment order, which is the linearization order.
	Parents         []Parent
	Using           []Using
	Functions       []*Function
	Variables       []string
	ConstructorArgs []Argument
	ConstructorCode []string
	// Imports lists references needed only for type names.
	Imports []Reference
}

// HasParent reports whether a parent with the given name is attached.
func (c *Contract) HasParent(name string) bool {
	_, ok := c.Parent(name)
	return ok
}

// Parent returns the attached parent with the given name.
func (c *Contract) Parent(name string) (Parent, bool) {
	for _, p := range c.Parents {
		if p.Contract.Name == name {
			return p, true
		}
	}
	return Parent{}, false
}

// ParentNames returns the names of all attached parents in attachment order.
func (c *Contract) ParentNames() []string {
	names := make([]string, len(c.Parents))
	for i, p := range c.Parents {
		names[i] = p.Contract.Name
	}
	return names
}

// Function returns the declared function matching the signature identity.
func (c *Contract) Function(sig Signature) (*Function, bool) {
	id := sig.ID()
	for _, fn := range c.Functions {
		if fn.ID() == id {
			return fn, true
		}
	}
	return nil, false
}

// parentIndex returns the attachment position of ref, or -1.
func (c *Contract) parentIndex(ref Reference) int {
	for i, p := range c.Parents {
		if p.Contract == ref {
			return i
		}
	}
	return -1
}

// OrderedProviders returns the providers of fn sorted by parent attachment
// order. Providers that are not attached parents are appended last in
// registration order.
func (c *Contract) OrderedProviders(fn *Function) []Reference {
	providers := fn.Providers()
	out := make([]Reference, 0, len(providers))
	for _, p := range c.Parents {
		for _, ref := range providers {
			if ref == p.Contract {
				out = append(out, ref)
				break
			}
		}
	}
	for _, ref := range providers {
		if c.parentIndex(ref) < 0 {
			out = append(out, ref)
		}
	}
	return out
}
