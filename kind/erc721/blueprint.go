package erc721

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
func Blueprint() optspace.Blueprint {
	bp := optspace.Blueprint{
		common.Fixed("name", "MyToken"),
		common.Fixed("symbol", "MTK"),
		common.Fixed("baseUri", "https://example.com/"),
		common.Flag("enumerable"),
		common.Flag("uriStorage"),
		common.Flag("burnable"),
		common.Flag("pausable"),
		common.Flag("mintable"),
		common.Flag("incremental"),
		common.Flag("votes"),
	}
	return append(bp, common.Dimensions()...)
}
