package smartasset

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
// Smart assets are never upgradeable.
func Blueprint() optspace.Blueprint {
	uriStorages := make([]any, len(URIStorages))
	for i, s := range URIStorages {
		uriStorages[i] = string(s)
	}
	bp := optspace.Blueprint{
		common.Fixed("name", "MySmartAsset"),
		common.Fixed("symbol", "MSA"),
		common.Fixed("rulesManager", ZeroAddress),
		common.Fixed("creditManager", ZeroAddress),
		common.Fixed("trustedForwarder", ZeroAddress),
		common.Fixed("baseUri", ""),
		{Name: "uriStorage", Values: uriStorages},
		common.Flag("updatable"),
		common.Flag("recoverable"),
		common.Flag("burnable"),
		common.Flag("soulbound"),
		common.Flag("shared"),
	}
	return append(bp, common.Dimensions(common.UpgradeableNone)...)
}
