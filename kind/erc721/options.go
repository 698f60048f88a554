// Package erc721 builds non-fungible-token contracts.
package erc721

import "github.com/syssam/solgen/kind/common"

// Options configure an ERC721 token.
type Options struct {
	common.Options `yaml:",inline"`

	Name        *string `yaml:"name,omitempty"`
	Symbol      *string `yaml:"symbol,omitempty"`
	BaseURI     *string `yaml:"baseUri,omitempty"`
	Enumerable  *bool   `yaml:"enumerable,omitempty"`
	URIStorage  *bool   `yaml:"uriStorage,omitempty"`
	Burnable    *bool   `yaml:"burnable,omitempty"`
	Pausable    *bool   `yaml:"pausable,omitempty"`
	Mintable    *bool   `yaml:"mintable,omitempty"`
	Incremental *bool   `yaml:"incremental,omitempty"`
	Votes       *bool   `yaml:"votes,omitempty"`
}

// Defaults are the ERC721 defaults.
var Defaults = Options{
	Options:     common.Defaults,
	Name:        common.Ptr("MyToken"),
	Symbol:      common.Ptr("MTK"),
	BaseURI:     common.Ptr(""),
	Enumerable:  common.Ptr(false),
	URIStorage:  common.Ptr(false),
	Burnable:    common.Ptr(false),
	Pausable:    common.Ptr(false),
	Mintable:    common.Ptr(false),
	Incremental: common.Ptr(false),
	Votes:       common.Ptr(false),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}
