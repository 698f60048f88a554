// Package bundle lays out a generated contract together with every vendored
// file it transitively imports, ready to be compiled standalone.
//
// The layout is fixed:
//
//	MyToken.sol                                    imports rewritten to ./<path>
//	@openzeppelin/contracts/README.md              one attribution per family
//	@openzeppelin/contracts/token/ERC20/ERC20.sol  vendored sources
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/catalog"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/compiler/printer"
	"github.com/syssam/solgen/graph"
)

// File is one file of a bundle.
type File struct {
	Path string
	Data []byte
}

// Bundle is a contract with its dependency closure.
type Bundle struct {
	// Root is the path of the generated contract.
	Root  string
	Files []File
}

var readme = template.Must(template.New("readme").Parse(`# {{ .Name }}

The files in this directory were sourced unmodified from {{ .Name }}{{ with .Version }} v{{ . }}{{ end }}.

They are not meant to be edited.
{{- if or .Repository .Package }}

The originals can be found on{{ with .Repository }} [GitHub]{{ end }}{{ if and .Repository .Package }} and{{ end }}{{ with .Package }} [npm]{{ end }}.
{{ with .Repository }}
[GitHub]: {{ . }}{{ with $.Version }}/tree/v{{ . }}{{ end }}
{{- end }}
{{- with .Package }}
[npm]: https://www.npmjs.com/package/{{ . }}{{ with $.Version }}/v/{{ . }}{{ end }}
{{- end }}
{{- end }}
`))

// New bundles c with the catalogued sources it depends on. A required path
// missing from the catalog fails with a *solgen.IntegrityError.
func New(c *contract.Contract, cat *catalog.Catalog) (*Bundle, error) {
	root := c.Name + ".sol"
	src, err := printer.Print(c, printer.WithTransformImport(func(p string) string { return "./" + p }))
	if err != nil {
		return nil, err
	}
	b := &Bundle{Root: root, Files: []File{{Path: root, Data: []byte(src)}}}

	deps := cat.Graph(map[string][]string{root: c.ImportPaths()})
	var (
		vendored []File
		families = make(map[string]struct{})
	)
	for _, path := range graph.Reachable(deps, root)[1:] {
		data, err := cat.Source(path)
		var ie *solgen.IntegrityError
		if errors.As(err, &ie) {
			ie.Root = root
			return nil, ie
		}
		if err != nil {
			return nil, err
		}
		if f, ok := cat.Family(path); ok {
			if _, seen := families[f.Prefix]; !seen {
				families[f.Prefix] = struct{}{}
				text, err := attribution(f)
				if err != nil {
					return nil, err
				}
				b.Files = append(b.Files, File{Path: f.Prefix + "README.md", Data: text})
			}
		}
		vendored = append(vendored, File{Path: path, Data: data})
	}
	b.Files = append(b.Files, vendored...)
	return b, nil
}

func attribution(f catalog.Family) ([]byte, error) {
	var buf bytes.Buffer
	if err := readme.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("bundle: attribution for %s: %w", f.Name, err)
	}
	return buf.Bytes(), nil
}

// Paths returns the paths of all files in the bundle.
func (b *Bundle) Paths() []string {
	out := make([]string, len(b.Files))
	for i, f := range b.Files {
		out[i] = f.Path
	}
	return out
}

// WriteDir writes the bundle under dir.
func (b *Bundle) WriteDir(dir string) error {
	for _, f := range b.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("bundle: create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("bundle: write %s: %w", f.Path, err)
		}
	}
	return nil
}
