package smartasset

import (
	"fmt"
	"slices"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

// Build composes a smart asset from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := validate(o); err != nil {
		return nil, err
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}

	b := contract.NewBuilder(name)
	addBase(b, o)
	if *o.Updatable {
		b.AddParent(SmartAssetUpdatable)
	}
	if *o.Recoverable {
		addRecoverable(b)
	}
	if *o.Burnable {
		b.AddParent(SmartAssetBurnable)
	}
	if *o.Soulbound {
		addSoulbound(b)
	}
	if *o.Shared {
		b.AddParent(SmartAssetShared)
	}
	common.SetAccessControl(b, *o.Access)
	finish(b)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}

func validate(o Options) error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	problems := make(map[string]string)
	if o.IsUpgradeable() {
		problems["upgradeable"] = "smart assets cannot be upgradeable"
	}
	if *o.Recoverable && *o.Soulbound {
		problems["soulbound"] = "soulbound smart assets cannot be recoverable"
	}
	if !slices.Contains(URIStorages, *o.URIStorage) {
		problems["uriStorage"] = fmt.Sprintf("unknown uri storage %q", *o.URIStorage)
	}
	for field, addr := range map[string]string{
		"rulesManager":     *o.RulesManager,
		"creditManager":    *o.CreditManager,
		"trustedForwarder": *o.TrustedForwarder,
	} {
		if !addressPattern.MatchString(addr) {
			problems[field] = fmt.Sprintf("%q is not an address", addr)
		}
	}
	if len(problems) > 0 {
		return &solgen.OptionsError{Messages: problems}
	}
	return nil
}

func addBase(b *contract.Builder, o Options) {
	b.AddParent(SmartAssetBase,
		contract.String(*o.Name),
		contract.String(*o.Symbol),
		contract.Lit(*o.RulesManager),
		contract.Lit(*o.CreditManager),
		contract.Lit(*o.TrustedForwarder),
	)
	for _, fn := range []string{
		"_burn", "_baseURI", "tokenURI",
		"setTokenTransferKey", "requestToken", "hydrateToken", "supportsInterface",
		"_beforeTokenTransfer", "_transfer", "_afterFirstTokenTransfer",
	} {
		b.AddOverride(SmartAssetBase, functions.Get(fn))
	}

	switch *o.URIStorage {
	case OverridableBaseURI:
		b.AddParent(SmartAssetURIStorageOverridable, contract.String(*o.BaseURI))
		for _, fn := range []string{
			"hydrateToken", "tokenURI", "supportsInterface", "_transfer",
			"_burn", "_beforeTokenTransfer", "_baseURI",
		} {
			b.AddOverride(SmartAssetURIStorageOverridable, functions.Get(fn))
		}
	default:
		b.AddParent(SmartAssetURIStorage, contract.String(*o.BaseURI))
		b.AddOverride(SmartAssetURIStorage, functions.Get("_baseURI"))
	}
}

func addRecoverable(b *contract.Builder) {
	b.AddParent(SmartAssetRecoverable)
	b.AddOverride(SmartAssetRecoverable, functions.Get("hydrateToken"))
	b.AddOverride(SmartAssetRecoverable, functions.Get("_burn"))
	b.AddOverride(SmartAssetRecoverable, functions.Get("_afterFirstTokenTransfer"))
}

func addSoulbound(b *contract.Builder) {
	b.AddParent(SmartAssetSoulbound)
	b.AddOverride(SmartAssetSoulbound, functions.Get("setTokenTransferKey"))
	b.AddOverride(SmartAssetSoulbound, functions.Get("requestToken"))
	b.AddOverride(SmartAssetSoulbound, functions.Get("_transfer"))
}

// finish collapses overrides made redundant by a combination of modules.
// SmartAssetURIStorageOverridable already resolves hydrateToken against
// SmartAssetRecoverable.
func finish(b *contract.Builder) {
	parents := make(map[string]bool)
	for _, name := range b.ParentNames() {
		parents[name] = true
	}
	if parents[SmartAssetURIStorageOverridable.Name] && parents[SmartAssetRecoverable.Name] {
		b.RemoveOverride(SmartAssetRecoverable, functions.Get("hydrateToken"))
	}
}
