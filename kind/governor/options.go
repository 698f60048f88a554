// Package governor builds on-chain governance contracts.
package governor

import "github.com/syssam/solgen/kind/common"

// QuorumMode selects how the quorum is expressed.
type QuorumMode string

// Quorum modes.
const (
	QuorumPercent  QuorumMode = "percent"
	QuorumAbsolute QuorumMode = "absolute"
)

// Votes is the kind of token that carries voting power.
type Votes string

// Voting tokens.
const (
	ERC20Votes  Votes = "erc20votes"
	ERC721Votes Votes = "erc721votes"
)

// Timelock is the executor that delays successful proposals.
type Timelock string

// Timelock styles.
const (
	TimelockNone         Timelock = "none"
	TimelockOpenZeppelin Timelock = "openzeppelin"
	TimelockCompound     Timelock = "compound"
)

// Options configure a governor. Delay and Period are durations such as
// "1 day" or "2.5 weeks". Access control does not apply: a governor is
// administered through its own proposals.
type Options struct {
	common.Options `yaml:",inline"`

	Name              *string     `yaml:"name,omitempty"`
	Delay             *string     `yaml:"delay,omitempty"`
	Period            *string     `yaml:"period,omitempty"`
	BlockTime         *int        `yaml:"blockTime,omitempty"`
	ProposalThreshold *string     `yaml:"proposalThreshold,omitempty"`
	Decimals          *int        `yaml:"decimals,omitempty"`
	QuorumMode        *QuorumMode `yaml:"quorumMode,omitempty"`
	QuorumPercent     *int        `yaml:"quorumPercent,omitempty"`
	QuorumAbsolute    *string     `yaml:"quorumAbsolute,omitempty"`
	Votes             *Votes      `yaml:"votes,omitempty"`
	Timelock          *Timelock   `yaml:"timelock,omitempty"`
	Storage           *bool       `yaml:"storage,omitempty"`
	Settings          *bool       `yaml:"settings,omitempty"`
}

// Defaults are the governor defaults.
var Defaults = Options{
	Options:           common.Defaults,
	Name:              common.Ptr("MyGovernor"),
	Delay:             common.Ptr("1 day"),
	Period:            common.Ptr("1 week"),
	BlockTime:         common.Ptr(12),
	ProposalThreshold: common.Ptr("0"),
	Decimals:          common.Ptr(18),
	QuorumMode:        common.Ptr(QuorumPercent),
	QuorumPercent:     common.Ptr(4),
	QuorumAbsolute:    common.Ptr(""),
	Votes:             common.Ptr(ERC20Votes),
	Timelock:          common.Ptr(TimelockOpenZeppelin),
	Storage:           common.Ptr(false),
	Settings:          common.Ptr(true),
}

// WithDefaults returns opts with every unset field taken from Defaults.
func WithDefaults(opts Options) Options {
	return common.Merge(opts, Defaults)
}
