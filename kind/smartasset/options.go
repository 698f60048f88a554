// Package smartasset builds Arianee smart-asset contracts.
package smartasset

import (
	"regexp"

	"github.com/syssam/solgen/kind/common"
)

// URIStorage selects how token URIs are resolved.
type URIStorage string

// URI storage styles.
const (
	BaseURI            URIStorage = "baseURI"
	OverridableBaseURI URIStorage = "overridableBaseURI"
)

// URIStorages lists every URI storage style.
var URIStorages = []URIStorage{BaseURI, OverridableBaseURI}

// ZeroAddress is the default for every collaborator address.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Options configure a smart asset.
type Options struct {
	common.Options `yaml:",inline"`

	Name             *string     `yaml:"name,omitempty"`
	Symbol           *string     `yaml:"symbol,omitempty"`
	RulesManager     *string     `yaml:"rulesManager,omitempty"`
	CreditManager    *string     `yaml:"creditManager,omitempty"`
	TrustedForwarder *string     `yaml:"trustedForwarder,omitempty"`
	BaseURI          *string     `yaml:"baseUri,omitempty"`
	URIStorage       *URIStorage `yaml:"uriStorage,omitempty"`
	Updatable        *bool       `yaml:"updatable,omitempty"`
	Recoverable      *bool       `yaml:"recoverable,omitempty"`
	Burnable         *bool       `yaml:"burnable,omitempty"`
	Soulbound        *bool       `yaml:"soulbound,omitempty"`
	Shared           *bool       `yaml:"shared,omitempty"`
}

// Defaults are the smart-asset defaults.
var Defaults = Options{
	Options:          common.Defaults,
	Name:             common.Ptr("MySmartAsset"),
	Symbol:           common.Ptr("MSA"),
	RulesManager:     common.Ptr(ZeroAddress),
	CreditManager:    common.Ptr(ZeroAddress),
	TrustedForwarder: common.Ptr(ZeroAddress),
	BaseURI:          common.Ptr(""),
	URIStorage:       common.Ptr(BaseURI),
	Updatable:        common.Ptr(false),
	Recoverable:      common.Ptr(false),
	Burnable:         common.Ptr(false),
	Soulbound:        common.Ptr(false),
	Shared:           common.Ptr(false),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}
