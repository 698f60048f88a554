package governor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/compiler/printer"
	"github.com/syssam/solgen/kind/common"
)

func TestDurationToBlocks(t *testing.T) {
	tests := []struct {
		duration  string
		blockTime int
		want      int64
	}{
		{"1 day", 12, 7200},
		{"1 week", 12, 50400},
		{"2 weeks", 12, 100800},
		{"1 block", 12, -1},
		{"1.5 hours", 12, 450},
		{"1 month", 12, 216000},
		{"1 year", 12, 2628000},
		{"10 seconds", 12, 0},
		{"1 minute", 2, 30},
		{"1 day", 0, -1},
		{"day", 12, -1},
		{"99999999999999999999 years", 12, -1},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			got, err := durationToBlocks(tt.duration, tt.blockTime)
			if tt.want < 0 {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildDefaults(t *testing.T) {
	c, err := Build(Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Governor", "GovernorSettings", "GovernorCountingSimple", "GovernorVotes",
		"GovernorVotesQuorumFraction", "GovernorTimelockControl",
	}, c.ParentNames())

	src, err := printer.Print(c)
	require.NoError(t, err)
	assert.Contains(t, src, "pragma solidity ^0.8.20;")
	assert.Contains(t, src, `import "@openzeppelin/contracts/governance/utils/IVotes.sol";`)
	assert.Contains(t, src, `import "@openzeppelin/contracts/governance/TimelockController.sol";`)
	assert.Contains(t, src, `    constructor(IVotes _token, TimelockController _timelock)
        Governor("MyGovernor")
        GovernorSettings(7200 /* 1 day */, 50400 /* 1 week */, 0)
        GovernorVotes(_token)
        GovernorVotesQuorumFraction(4)
        GovernorTimelockControl(_timelock)
    {}
`)
	assert.Contains(t, src, "        override(Governor, GovernorSettings)\n")
	assert.Contains(t, src, "        override(Governor, GovernorVotesQuorumFraction)\n")
	assert.Contains(t, src, "        override(Governor, GovernorTimelockControl)\n        returns (uint48)\n")
	assert.Contains(t, src, "return super._queueOperations(proposalId, targets, values, calldatas, descriptionHash);")
	assert.Contains(t, src, "super._executeOperations(proposalId, targets, values, calldatas, descriptionHash);")
}

func TestBuildFeatures(t *testing.T) {
	t.Run("literal voting parameters", func(t *testing.T) {
		c, err := Build(Options{
			Settings:          common.Ptr(false),
			ProposalThreshold: common.Ptr("5"),
			Timelock:          common.Ptr(TimelockNone),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Governor", "GovernorCountingSimple", "GovernorVotes", "GovernorVotesQuorumFraction"}, c.ParentNames())
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "    function votingDelay() public pure override returns (uint256) {\n        return 7200; // 1 day\n    }\n")
		assert.Contains(t, src, "        return 50400; // 1 week\n")
		assert.Contains(t, src, "        return 5e18;\n")
		assert.NotContains(t, src, "_timelock")
	})

	t.Run("zero threshold keeps the inherited function", func(t *testing.T) {
		c, err := Build(Options{Settings: common.Ptr(false)})
		require.NoError(t, err)
		_, ok := c.Function(functions.Get("proposalThreshold"))
		assert.False(t, ok)
	})

	t.Run("absolute quorum scaled by decimals", func(t *testing.T) {
		c, err := Build(Options{QuorumMode: common.Ptr(QuorumAbsolute), QuorumAbsolute: common.Ptr("1000"), Decimals: common.Ptr(6)})
		require.NoError(t, err)
		assert.False(t, c.HasParent("GovernorVotesQuorumFraction"))
		fn, ok := c.Function(functions.Get("quorum"))
		require.True(t, ok)
		assert.Equal(t, []string{"return 1000e6;"}, fn.Code)
	})

	t.Run("nft votes are not scaled", func(t *testing.T) {
		c, err := Build(Options{
			Votes:             common.Ptr(ERC721Votes),
			QuorumMode:        common.Ptr(QuorumAbsolute),
			QuorumAbsolute:    common.Ptr("10"),
			ProposalThreshold: common.Ptr("2"),
		})
		require.NoError(t, err)
		fn, _ := c.Function(functions.Get("quorum"))
		assert.Equal(t, []string{"return 10;"}, fn.Code)
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "GovernorSettings(7200 /* 1 day */, 50400 /* 1 week */, 2)")
	})

	t.Run("compound timelock and storage", func(t *testing.T) {
		c, err := Build(Options{Timelock: common.Ptr(TimelockCompound), Storage: common.Ptr(true)})
		require.NoError(t, err)
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "ICompoundTimelock _timelock")
		assert.Contains(t, src, `import "@openzeppelin/contracts/vendor/compound/ICompoundTimelock.sol";`)
		assert.Contains(t, src, "override(Governor, GovernorTimelockCompound)")
		assert.Contains(t, src, "override(Governor, GovernorStorage)")
	})

	t.Run("uups upgrades through governance", func(t *testing.T) {
		c, err := Build(Options{Options: common.Options{Upgradeable: common.Ptr(common.UpgradeableUUPS)}})
		require.NoError(t, err)
		assert.Equal(t, "Initializable", c.ParentNames()[0])
		assert.False(t, c.HasParent("Ownable"))
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "function initialize(IVotes _token, TimelockControllerUpgradeable _timelock)")
		assert.Contains(t, src, "__GovernorVotes_init(_token);")
		assert.Contains(t, src, "onlyGovernance")
		assert.Contains(t, src, "override(GovernorUpgradeable, GovernorSettingsUpgradeable)")
	})
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		option string
	}{
		{"bad delay", Options{Delay: common.Ptr("soon")}, "delay"},
		{"bad period", Options{Period: common.Ptr("1 fortnight")}, "period"},
		{"overlong period", Options{Period: common.Ptr("99999999999999999999 years")}, "period"},
		{"zero block time", Options{BlockTime: common.Ptr(0)}, "delay"},
		{"bad threshold", Options{ProposalThreshold: common.Ptr("1.5")}, "proposalThreshold"},
		{"quorum over 100", Options{QuorumPercent: common.Ptr(101)}, "quorumPercent"},
		{"missing absolute quorum", Options{QuorumMode: common.Ptr(QuorumAbsolute)}, "quorumAbsolute"},
		{"negative decimals", Options{Decimals: common.Ptr(-1)}, "decimals"},
		{"unknown timelock", Options{Timelock: common.Ptr(Timelock("multisig"))}, "timelock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.opts)
			var oe *solgen.OptionsError
			require.ErrorAs(t, err, &oe)
			assert.Contains(t, oe.Messages, tt.option)
		})
	}
}

func TestBlueprint(t *testing.T) {
	bp := Blueprint()
	assert.Equal(t, 576, bp.Count())
	for comb := range optspace.Alternatives(bp) {
		var o Options
		require.NoError(t, optspace.Decode(comb, &o))
		c, err := Build(o)
		require.NoError(t, err)
		_, err = printer.Print(c)
		require.NoError(t, err)
	}
}
