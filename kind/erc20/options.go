// Package erc20 builds fungible-token contracts.
package erc20

import "github.com/syssam/solgen/kind/common"

// Options configure an ERC20 token. Premint is a decimal amount minted to
// the deployer, e.g. "1000.5".
type Options struct {
	common.Options `yaml:",inline"`

	Name      *string `yaml:"name,omitempty"`
	Symbol    *string `yaml:"symbol,omitempty"`
	Burnable  *bool   `yaml:"burnable,omitempty"`
	Snapshots *bool   `yaml:"snapshots,omitempty"`
	Pausable  *bool   `yaml:"pausable,omitempty"`
	Premint   *string `yaml:"premint,omitempty"`
	Mintable  *bool   `yaml:"mintable,omitempty"`
	Permit    *bool   `yaml:"permit,omitempty"`
	Votes     *bool   `yaml:"votes,omitempty"`
	Flashmint *bool   `yaml:"flashmint,omitempty"`
}

// Defaults are the ERC20 defaults.
var Defaults = Options{
	Options:   common.Defaults,
	Name:      common.Ptr("MyToken"),
	Symbol:    common.Ptr("MTK"),
	Burnable:  common.Ptr(false),
	Snapshots: common.Ptr(false),
	Pausable:  common.Ptr(false),
	Premint:   common.Ptr("0"),
	Mintable:  common.Ptr(false),
	Permit:    common.Ptr(true),
	Votes:     common.Ptr(false),
	Flashmint: common.Ptr(false),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}

// RequiresAccessControl reports whether opts restrict functions to a role,
// forcing an access style even when none is selected.
func RequiresAccessControl(opts Options) bool {
	o := WithDefaults(opts)
	return *o.Snapshots || *o.Pausable || *o.Mintable || *o.Upgradeable == common.UpgradeableUUPS
}
