// Package catalog reads the vendored module catalog: the source of every
// module the kind builders reference, grouped in families, plus the import
// edges between them.
//
// A catalog is a directory holding catalog.yaml and the sources at their
// import paths:
//
//	catalog.yaml
//	@openzeppelin/contracts/token/ERC20/ERC20.sol
//	@openzeppelin/contracts/utils/Context.sol
//	...
//
// catalog.yaml lists the families and the direct imports of each source:
//
//	families:
//	  - name: OpenZeppelin Contracts
//	    prefix: "@openzeppelin/contracts/"
//	    package: "@openzeppelin/contracts"
//	    version: 4.9.3
//	    repository: https://github.com/OpenZeppelin/openzeppelin-contracts
//	dependencies:
//	  "@openzeppelin/contracts/token/ERC20/ERC20.sol":
//	    - "@openzeppelin/contracts/utils/Context.sol"
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/graph"
)

// ManifestFile is the name of the catalog description within the catalog
// directory.
const ManifestFile = "catalog.yaml"

// Family is a vendored package whose files share an import path prefix.
type Family struct {
	Name       string `yaml:"name"`
	Prefix     string `yaml:"prefix"`
	Package    string `yaml:"package,omitempty"`
	Version    string `yaml:"version,omitempty"`
	Repository string `yaml:"repository,omitempty"`
}

// Catalog is a read-only view of a vendored catalog.
type Catalog struct {
	Families     []Family            `yaml:"families"`
	Dependencies map[string][]string `yaml:"dependencies"`

	fsys fs.FS
}

// Load reads the catalog rooted at fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", ManifestFile, err)
	}
	c := &Catalog{fsys: fsys}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", ManifestFile, err)
	}
	for i, f := range c.Families {
		if f.Prefix == "" {
			return nil, fmt.Errorf("catalog: family %d (%s) has no prefix", i, f.Name)
		}
	}
	if c.Dependencies == nil {
		c.Dependencies = make(map[string][]string)
	}
	return c, nil
}

// Imports returns the direct imports of path.
func (c *Catalog) Imports(path string) []string {
	return c.Dependencies[path]
}

// Closure returns, for every catalogued path, the sorted set of paths it
// imports directly or indirectly.
func (c *Catalog) Closure() map[string][]string {
	return graph.TransitiveClosure(c.Dependencies)
}

// Graph returns the import edges of the catalog extended with extra
// entries, e.g. a generated contract and its direct imports.
func (c *Catalog) Graph(extra map[string][]string) map[string][]string {
	deps := make(map[string][]string, len(c.Dependencies)+len(extra))
	maps.Copy(deps, c.Dependencies)
	maps.Copy(deps, extra)
	return deps
}

// Source returns the source text of path. A path with no source is an
// *solgen.IntegrityError.
func (c *Catalog) Source(path string) ([]byte, error) {
	data, err := fs.ReadFile(c.fsys, path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, solgen.NewIntegrityError(path, "")
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return data, nil
}

// Family returns the family path belongs to, the one with the longest
// matching prefix.
func (c *Catalog) Family(path string) (Family, bool) {
	var (
		best  Family
		found bool
	)
	for _, f := range c.Families {
		if strings.HasPrefix(path, f.Prefix) && (!found || len(f.Prefix) > len(best.Prefix)) {
			best, found = f, true
		}
	}
	return best, found
}
