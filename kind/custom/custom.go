package custom

import (
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

// Build composes a custom contract from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}
	access, upgradeable := *o.Access, *o.Upgradeable

	b := contract.NewBuilder(name)
	common.AddInitializable(b, upgradeable)
	b.AddParent(common.Context)
	if *o.Pausable {
		common.AddPausable(b, access)
	}
	common.SetAccessControl(b, access)
	common.SetUpgradeable(b, upgradeable, access)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}
