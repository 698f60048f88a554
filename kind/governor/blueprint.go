package governor

import (
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/kind/common"
)

// Blueprint is the option space exercised by generated test corpora.
// Governors have no access dimension.
func Blueprint() optspace.Blueprint {
	bp := optspace.Blueprint{
		common.Fixed("name", "MyGovernor"),
		common.Fixed("delay", "1 day"),
		common.Fixed("period", "1 week"),
		common.Fixed("blockTime", 12),
		{Name: "proposalThreshold", Values: []any{"0", "1000"}},
		common.Fixed("decimals", 18),
		{Name: "quorumMode", Values: []any{string(QuorumPercent), string(QuorumAbsolute)}},
		common.Fixed("quorumPercent", 4),
		common.Fixed("quorumAbsolute", "1000"),
		{Name: "votes", Values: []any{string(ERC20Votes), string(ERC721Votes)}},
		{Name: "timelock", Values: []any{string(TimelockNone), string(TimelockOpenZeppelin), string(TimelockCompound)}},
		common.Flag("storage"),
		common.Flag("settings"),
	}
	for _, d := range common.Dimensions() {
		if d.Name != "access" {
			bp = append(bp, d)
		}
	}
	return bp
}
