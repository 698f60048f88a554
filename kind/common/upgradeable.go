package common

import "github.com/syssam/solgen/compiler/contract"

// AddInitializable marks an upgradeable contract and attaches Initializable.
// Kinds call it before attaching their base so Initializable comes first in
// the linearization.
func AddInitializable(b *contract.Builder, upgradeable Upgradeable) {
	if upgradeable == UpgradeableNone || upgradeable == "" {
		return
	}
	b.SetUpgradeable(true)
	b.AddParent(Initializable)
}

// SetUpgradeable finishes the proxy setup. UUPS contracts get
// UUPSUpgradeable with an access-restricted _authorizeUpgrade.
func SetUpgradeable(b *contract.Builder, upgradeable Upgradeable, access Access) {
	if upgradeable != UpgradeableUUPS {
		return
	}
	authorize := Functions.Get("_authorizeUpgrade")
	RequireAccessControl(b, authorize, access, "UPGRADER")
	addUUPS(b, authorize)
}

// SetUpgradeableGovernance is SetUpgradeable for contracts that govern
// themselves: upgrades go through a governance proposal.
func SetUpgradeableGovernance(b *contract.Builder, upgradeable Upgradeable) {
	if upgradeable != UpgradeableUUPS {
		return
	}
	authorize := Functions.Get("_authorizeUpgrade")
	b.AddModifier("onlyGovernance", authorize)
	addUUPS(b, authorize)
}

func addUUPS(b *contract.Builder, authorize contract.Signature) {
	b.AddParent(UUPSUpgradeable)
	b.AddOverride(UUPSUpgradeable, authorize)
	b.SetFunctionBody(nil, authorize)
}
