package governor

import (
	"fmt"
	"regexp"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

// Pragma is the compiler constraint of the governance modules.
const Pragma = "^0.8.20"

var (
	numberPattern = regexp.MustCompile(`^\d+$`)
	zeroPattern   = regexp.MustCompile(`^0+$`)
)

// Build composes a governor from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	params, err := resolve(o)
	if err != nil {
		return nil, err
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}
	upgradeable := *o.Upgradeable

	b := contract.NewBuilder(name)
	b.SetPragma(Pragma)
	common.AddInitializable(b, upgradeable)
	b.AddParent(Governor, contract.String(*o.Name))
	addSettings(b, o, params)
	b.AddParent(GovernorCountingSimple)
	if *o.Storage {
		b.AddParent(GovernorStorage)
		b.AddOverride(Governor, functions.Get("_propose"))
		b.AddOverride(GovernorStorage, functions.Get("_propose"))
	}
	addVotes(b)
	addQuorum(b, o, params)
	addTimelock(b, *o.Timelock)
	common.SetUpgradeableGovernance(b, upgradeable)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}

// parameters are the numeric settings resolved from the options.
type parameters struct {
	delay, period int64
	threshold     string
	quorum        string
}

func resolve(o Options) (parameters, error) {
	var (
		p        parameters
		problems = make(map[string]string)
		err      error
	)
	if p.delay, err = durationToBlocks(*o.Delay, *o.BlockTime); err != nil {
		problems["delay"] = err.Error()
	}
	if p.period, err = durationToBlocks(*o.Period, *o.BlockTime); err != nil {
		problems["period"] = err.Error()
	}
	if *o.Decimals < 0 {
		problems["decimals"] = "not a valid number"
	}
	if !numberPattern.MatchString(*o.ProposalThreshold) {
		problems["proposalThreshold"] = "not a valid number"
	}
	p.threshold = scale(*o.ProposalThreshold, o)

	switch *o.QuorumMode {
	case QuorumPercent:
		if *o.QuorumPercent < 0 || *o.QuorumPercent > 100 {
			problems["quorumPercent"] = "invalid percentage"
		}
	case QuorumAbsolute:
		if !numberPattern.MatchString(*o.QuorumAbsolute) {
			problems["quorumAbsolute"] = "not a valid number"
		}
		p.quorum = scale(*o.QuorumAbsolute, o)
	default:
		problems["quorumMode"] = fmt.Sprintf("unknown quorum mode %q", *o.QuorumMode)
	}
	switch *o.Votes {
	case ERC20Votes, ERC721Votes:
	default:
		problems["votes"] = fmt.Sprintf("unknown votes token %q", *o.Votes)
	}
	switch *o.Timelock {
	case TimelockNone, TimelockOpenZeppelin, TimelockCompound:
	default:
		problems["timelock"] = fmt.Sprintf("unknown timelock %q", *o.Timelock)
	}
	if len(problems) > 0 {
		return p, &solgen.OptionsError{Messages: problems}
	}
	return p, nil
}

// scale expresses a token amount in the smallest unit. NFT votes are
// counted in whole tokens.
func scale(amount string, o Options) string {
	if zeroPattern.MatchString(amount) || *o.Decimals == 0 || *o.Votes == ERC721Votes {
		return amount
	}
	return fmt.Sprintf("%se%d", amount, *o.Decimals)
}

func addSettings(b *contract.Builder, o Options, p parameters) {
	delay, period, threshold := functions.Get("votingDelay"), functions.Get("votingPeriod"), functions.Get("proposalThreshold")
	if *o.Settings {
		b.AddParent(GovernorSettings,
			contract.Note{Value: contract.Number(p.delay), Note: *o.Delay},
			contract.Note{Value: contract.Number(p.period), Note: *o.Period},
			contract.Lit(p.threshold),
		)
		for _, fn := range []contract.Signature{delay, period, threshold} {
			b.AddOverride(Governor, fn)
			b.AddOverride(GovernorSettings, fn)
		}
		return
	}
	setLiteral(b, delay, fmt.Sprintf("return %d; // %s", p.delay, *o.Delay))
	setLiteral(b, period, fmt.Sprintf("return %d; // %s", p.period, *o.Period))
	if p.threshold != "" && !zeroPattern.MatchString(p.threshold) {
		setLiteral(b, threshold, "return "+p.threshold+";")
	}
}

// setLiteral replaces a Governor function with a constant body.
func setLiteral(b *contract.Builder, sig contract.Signature, code string) {
	b.AddOverride(Governor, sig)
	b.SetMutability(sig, contract.Pure)
	b.SetFunctionBody([]string{code}, sig)
}

func addVotes(b *contract.Builder) {
	token := IVotes
	b.AddConstructorArgument(contract.Argument{Name: "_token", TypeRef: &token})
	b.AddParent(GovernorVotes, contract.Lit("_token"))
}

func addQuorum(b *contract.Builder, o Options, p parameters) {
	quorum := functions.Get("quorum")
	if *o.QuorumMode == QuorumAbsolute {
		setLiteral(b, quorum, "return "+p.quorum+";")
		return
	}
	b.AddParent(GovernorVotesQuorumFraction, contract.Number(*o.QuorumPercent))
	b.AddOverride(Governor, quorum)
	b.AddOverride(GovernorVotesQuorumFraction, quorum)
}

func addTimelock(b *contract.Builder, timelock Timelock) {
	var module, arg contract.Reference
	switch timelock {
	case TimelockOpenZeppelin:
		module, arg = GovernorTimelockControl, TimelockController
	case TimelockCompound:
		module, arg = GovernorTimelockCompound, ICompoundTimelock
	default:
		return
	}
	b.AddConstructorArgument(contract.Argument{Name: "_timelock", TypeRef: &arg})
	b.AddParent(module, contract.Lit("_timelock"))
	for _, fn := range []string{
		"state", "proposalNeedsQueuing", "_queueOperations",
		"_executeOperations", "_cancel", "_executor",
	} {
		b.AddOverride(Governor, functions.Get(fn))
		b.AddOverride(module, functions.Get(fn))
	}
}
