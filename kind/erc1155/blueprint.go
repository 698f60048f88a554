package erc1155

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
func Blueprint() optspace.Blueprint {
	bp := optspace.Blueprint{
		common.Fixed("name", "MyToken"),
		common.Fixed("uri", "https://example.com/{id}.json"),
		common.Flag("burnable"),
		common.Flag("pausable"),
		common.Flag("mintable"),
		common.Flag("supply"),
		common.Flag("updatableUri"),
	}
	return append(bp, common.Dimensions()...)
}
