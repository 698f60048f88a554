// Package custom builds general-purpose contracts with only the shared
// features.
package custom

import "github.com/syssam/solgen/kind/common"

// Options configure a custom contract.
type Options struct {
	common.Options `yaml:",inline"`

	Name     *string `yaml:"name,omitempty"`
	Pausable *bool   `yaml:"pausable,omitempty"`
}

// Defaults are the custom contract defaults.
var Defaults = Options{
	Options:  common.Defaults,
	Name:     common.Ptr("MyContract"),
	Pausable: common.Ptr(false),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}
