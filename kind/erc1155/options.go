// Package erc1155 builds multi-token contracts.
package erc1155

import "github.com/syssam/solgen/kind/common"

// Options configure an ERC1155 token.
type Options struct {
	common.Options `yaml:",inline"`

	Name         *string `yaml:"name,omitempty"`
	URI          *string `yaml:"uri,omitempty"`
	Burnable     *bool   `yaml:"burnable,omitempty"`
	Pausable     *bool   `yaml:"pausable,omitempty"`
	Mintable     *bool   `yaml:"mintable,omitempty"`
	Supply       *bool   `yaml:"supply,omitempty"`
	UpdatableURI *bool   `yaml:"updatableUri,omitempty"`
}

// Defaults are the ERC1155 defaults.
var Defaults = Options{
	Options:      common.Defaults,
	Name:         common.Ptr("MyToken"),
	URI:          common.Ptr(""),
	Burnable:     common.Ptr(false),
	Pausable:     common.Ptr(false),
	Mintable:     common.Ptr(false),
	Supply:       common.Ptr(false),
	UpdatableURI: common.Ptr(true),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}
