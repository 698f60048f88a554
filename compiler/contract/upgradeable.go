package contract

import (
	"path"
	"strings"
	"unicode"
)

// Import path roots of the OpenZeppelin module families.
const (
	ContractsPrefix   = "@openzeppelin/contracts/"
	UpgradeablePrefix = "@openzeppelin/contracts-upgradeable/"
)

// Transpiled reports whether ref has an upgradeable counterpart.
// Interfaces (IVotes, IGovernor, ...) are shared by both families.
func Transpiled(ref Reference) bool {
	return strings.HasPrefix(ref.Path, ContractsPrefix) && !isInterfaceName(ref.Name)
}

func isInterfaceName(name string) bool {
	r := []rune(name)
	return len(r) > 1 && r[0] == 'I' && unicode.IsUpper(r[1])
}

// TransformName returns the name under which ref is referenced in source.
func (c *Contract) TransformName(ref Reference) string {
	if c.Upgradeable && Transpiled(ref) {
		return ref.Name + "Upgradeable"
	}
	return ref.Name
}

// ImportPath returns the path ref is imported from.
func (c *Contract) ImportPath(ref Reference) string {
	if !c.Upgradeable || !Transpiled(ref) {
		return ref.Path
	}
	p := UpgradeablePrefix + strings.TrimPrefix(ref.Path, ContractsPrefix)
	ext := path.Ext(p)
	return strings.TrimSuffix(p, ext) + "Upgradeable" + ext
}

// ArgumentType returns the printed type of a, with contract types renamed
// for the upgradeable family.
func (c *Contract) ArgumentType(a Argument) string {
	if a.TypeRef != nil {
		return c.TransformName(*a.TypeRef)
	}
	return a.Type
}

// InitializerName returns the name of the initializer of an upgradeable
// parent, e.g. "__ERC20_init".
func InitializerName(ref Reference) string {
	return "__" + ref.Name + "_init"
}

// ImportPaths returns the distinct import paths of the contract in first-use
// order: parents, libraries, constructor argument types, then import-only
// references.
func (c *Contract) ImportPaths() []string {
	var (
		seen  = make(map[string]struct{})
		paths []string
	)
	add := func(ref Reference) {
		if ref.Path == "" {
			return
		}
		p := c.ImportPath(ref)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	for _, p := range c.Parents {
		add(p.Contract)
	}
	for _, u := range c.Using {
		add(u.Library)
	}
	for _, a := range c.ConstructorArgs {
		if a.TypeRef != nil {
			add(*a.TypeRef)
		}
	}
	for _, ref := range c.Imports {
		add(ref)
	}
	return paths
}

// Footprint returns the import paths of all attached parents, the set of
// vendored modules the contract is composed from.
func (c *Contract) Footprint() []string {
	paths := make([]string, 0, len(c.Parents))
	for _, p := range c.Parents {
		paths = append(paths, c.ImportPath(p.Contract))
	}
	return paths
}
