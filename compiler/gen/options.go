package gen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/custom"
	"github.com/syssam/solgen/kind/erc1155"
	"github.com/syssam/solgen/kind/erc20"
	"github.com/syssam/solgen/kind/erc721"
	"github.com/syssam/solgen/kind/governor"
	"github.com/syssam/solgen/kind/smartasset"
)

// Kind names a contract kind.
type Kind string

// Contract kinds.
const (
	KindSmartAsset Kind = "SmartAsset"
	KindERC20      Kind = "ERC20"
	KindERC721     Kind = "ERC721"
	KindERC1155    Kind = "ERC1155"
	KindGovernor   Kind = "Governor"
	KindCustom     Kind = "Custom"
)

// AllKinds lists every kind in generation order.
var AllKinds = []Kind{KindSmartAsset, KindERC20, KindERC721, KindERC1155, KindGovernor, KindCustom}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", solgen.NewOptionsError("kind", fmt.Sprintf("unknown kind %q", s))
}

// Options is the closed set of generation options, one variant per kind.
// Values are treated as immutable; builders merge defaults into a copy.
type Options interface {
	Kind() Kind
	sealed()
}

// Option variants.
type (
	SmartAsset struct {
		smartasset.Options `yaml:",inline"`
	}
	ERC20 struct {
		erc20.Options `yaml:",inline"`
	}
	ERC721 struct {
		erc721.Options `yaml:",inline"`
	}
	ERC1155 struct {
		erc1155.Options `yaml:",inline"`
	}
	Governor struct {
		governor.Options `yaml:",inline"`
	}
	Custom struct {
		custom.Options `yaml:",inline"`
	}
)

func (SmartAsset) Kind() Kind { return KindSmartAsset }
func (ERC20) Kind() Kind      { return KindERC20 }
func (ERC721) Kind() Kind     { return KindERC721 }
func (ERC1155) Kind() Kind    { return KindERC1155 }
func (Governor) Kind() Kind   { return KindGovernor }
func (Custom) Kind() Kind     { return KindCustom }

func (SmartAsset) sealed() {}
func (ERC20) sealed()      {}
func (ERC721) sealed()     {}
func (ERC1155) sealed()    {}
func (Governor) sealed()   {}
func (Custom) sealed()     {}

// zero returns an empty variant for kind.
func zero(kind Kind) (Options, error) {
	switch kind {
	case KindSmartAsset:
		return &SmartAsset{}, nil
	case KindERC20:
		return &ERC20{}, nil
	case KindERC721:
		return &ERC721{}, nil
	case KindERC1155:
		return &ERC1155{}, nil
	case KindGovernor:
		return &Governor{}, nil
	case KindCustom:
		return &Custom{}, nil
	}
	return nil, solgen.NewOptionsError("kind", fmt.Sprintf("unknown kind %q", kind))
}

// deref turns the pointer returned by zero back into a value variant.
func deref(o Options) Options {
	switch o := o.(type) {
	case *SmartAsset:
		return *o
	case *ERC20:
		return *o
	case *ERC721:
		return *o
	case *ERC1155:
		return *o
	case *Governor:
		return *o
	case *Custom:
		return *o
	}
	return o
}

// FromCombination decodes a blueprint combination into the variant of kind.
func FromCombination(kind Kind, comb optspace.Combination) (Options, error) {
	o, err := zero(kind)
	if err != nil {
		return nil, err
	}
	if err := optspace.Decode(comb, o); err != nil {
		return nil, err
	}
	return deref(o), nil
}

// ParseOptions reads an options document: a YAML mapping holding a kind
// discriminator plus the fields of that kind.
//
//	kind: ERC20
//	name: Coin
//	mintable: true
func ParseOptions(data []byte) (Options, error) {
	var head struct {
		Kind Kind `yaml:"kind"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("gen: parse options: %w", err)
	}
	if head.Kind == "" {
		return nil, solgen.NewOptionsError("kind", "missing kind")
	}
	o, err := zero(head.Kind)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("gen: parse %s options: %w", head.Kind, err)
	}
	return deref(o), nil
}

// Fields returns the set fields of o keyed by name, including the kind
// discriminator.
func Fields(o Options) (map[string]any, error) {
	m, err := optspace.Fields(o)
	if err != nil {
		return nil, err
	}
	m["kind"] = string(o.Kind())
	return m, nil
}

// MarshalOptions encodes o as an options document readable by ParseOptions.
func MarshalOptions(o Options) ([]byte, error) {
	m, err := Fields(o)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(m)
}
