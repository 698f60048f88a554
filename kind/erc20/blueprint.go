package erc20

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
func Blueprint() optspace.Blueprint {
	bp := optspace.Blueprint{
		common.Fixed("name", "MyToken"),
		common.Fixed("symbol", "MTK"),
		common.Flag("burnable"),
		common.Flag("snapshots"),
		common.Flag("pausable"),
		common.Fixed("premint", "1"),
		common.Flag("mintable"),
		common.Flag("permit"),
		common.Flag("votes"),
		common.Flag("flashmint"),
	}
	return append(bp, common.Dimensions()...)
}
