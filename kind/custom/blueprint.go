package custom

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
func Blueprint() optspace.Blueprint {
	bp := optspace.Blueprint{
		common.Fixed("name", "MyContract"),
		common.Flag("pausable"),
	}
	return append(bp, common.Dimensions()...)
}
