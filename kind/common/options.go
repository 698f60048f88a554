// Package common holds the options and composition steps shared by every
// contract kind: access control, pausability, upgradeability and info.
package common

import (
	"fmt"

	"github.com/syssam/solgen"
)

// Access is the access-control style of a contract.
type Access string

// Access-control styles.
const (
	AccessNone    Access = "none"
	AccessOwnable Access = "ownable"
	AccessRoles   Access = "roles"
)

// Accesses lists every access-control style.
var Accesses = []Access{AccessNone, AccessOwnable, AccessRoles}

// Upgradeable is the proxy pattern a contract is deployed behind.
type Upgradeable string

// Upgradeability styles.
const (
	UpgradeableNone        Upgradeable = "none"
	UpgradeableTransparent Upgradeable = "transparent"
	UpgradeableUUPS        Upgradeable = "uups"
)

// Upgradeables lists every upgradeability style.
var Upgradeables = []Upgradeable{UpgradeableNone, UpgradeableTransparent, UpgradeableUUPS}

// Info carries free-form header metadata.
type Info struct {
	SecurityContact string `yaml:"securityContact,omitempty"`
	License         string `yaml:"license,omitempty"`
}

// Options are the fields shared by all kinds. A nil field is unset and takes
// the kind default; explicit zero values are honored.
type Options struct {
	Access      *Access      `yaml:"access,omitempty"`
	Upgradeable *Upgradeable `yaml:"upgradeable,omitempty"`
	Info        *Info        `yaml:"info,omitempty"`
}

// Defaults are the shared defaults.
var Defaults = Options{
	Access:      Ptr(AccessNone),
	Upgradeable: Ptr(UpgradeableNone),
	Info:        &Info{License: "MIT"},
}

// Validate reports unknown enumeration values.
func (o Options) Validate() error {
	if o.Access != nil && !valid(*o.Access, Accesses) {
		return solgen.NewOptionsError("access", fmt.Sprintf("unknown access style %q", *o.Access))
	}
	if o.Upgradeable != nil && !valid(*o.Upgradeable, Upgradeables) {
		return solgen.NewOptionsError("upgradeable", fmt.Sprintf("unknown upgradeability %q", *o.Upgradeable))
	}
	return nil
}

// IsUpgradeable reports whether a proxy pattern is selected.
func (o Options) IsUpgradeable() bool {
	return o.Upgradeable != nil && *o.Upgradeable != UpgradeableNone
}

func valid[T comparable](v T, all []T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// Value returns *p, or the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
