package governor

import "github.com/syssam/solgen/compiler/contract"

const (
	governancePath = contract.ContractsPrefix + "governance/"
	extensionsPath = governancePath + "extensions/"
)

func extension(name string) contract.Reference {
	return contract.Reference{Name: name, Path: extensionsPath + name + ".sol"}
}

// Modules composed into governors.
var (
	Governor                    = contract.Reference{Name: "Governor", Path: governancePath + "Governor.sol"}
	GovernorSettings            = extension("GovernorSettings")
	GovernorCountingSimple      = extension("GovernorCountingSimple")
	GovernorStorage             = extension("GovernorStorage")
	GovernorVotes               = extension("GovernorVotes")
	GovernorVotesQuorumFraction = extension("GovernorVotesQuorumFraction")
	GovernorTimelockControl     = extension("GovernorTimelockControl")
	GovernorTimelockCompound    = extension("GovernorTimelockCompound")

	IVotes             = contract.Reference{Name: "IVotes", Path: governancePath + "utils/IVotes.sol"}
	TimelockController = contract.Reference{Name: "TimelockController", Path: governancePath + "TimelockController.sol"}
	ICompoundTimelock  = contract.Reference{Name: "ICompoundTimelock", Path: contract.ContractsPrefix + "vendor/compound/ICompoundTimelock.sol"}
)

var operationArgs = []contract.Argument{
	{Name: "targets", Type: "address[]", Location: "memory"},
	{Name: "values", Type: "uint256[]", Location: "memory"},
	{Name: "calldatas", Type: "bytes[]", Location: "memory"},
	{Name: "descriptionHash", Type: "bytes32"},
}

var proposalID = contract.Argument{Name: "proposalId", Type: "uint256"}

var functions = contract.DefineFunctions(map[string]contract.Signature{
	"votingDelay": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Returns:    []string{"uint256"},
	},
	"votingPeriod": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Returns:    []string{"uint256"},
	},
	"proposalThreshold": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Returns:    []string{"uint256"},
	},
	"quorum": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{{Name: "blockNumber", Type: "uint256"}},
		Returns:    []string{"uint256"},
	},
	"state": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{proposalID},
		Returns:    []string{"ProposalState"},
	},
	"proposalNeedsQueuing": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{proposalID},
		Returns:    []string{"bool"},
	},
	"_queueOperations": {
		Kind:    contract.Internal,
		Args:    append([]contract.Argument{proposalID}, operationArgs...),
		Returns: []string{"uint48"},
	},
	"_executeOperations": {
		Kind: contract.Internal,
		Args: append([]contract.Argument{proposalID}, operationArgs...),
	},
	"_cancel": {
		Kind:    contract.Internal,
		Args:    operationArgs,
		Returns: []string{"uint256"},
	},
	"_executor": {
		Kind:       contract.Internal,
		Mutability: contract.View,
		Returns:    []string{"address"},
	},
	"_propose": {
		Kind: contract.Internal,
		Args: []contract.Argument{
			{Name: "targets", Type: "address[]", Location: "memory"},
			{Name: "values", Type: "uint256[]", Location: "memory"},
			{Name: "calldatas", Type: "bytes[]", Location: "memory"},
			{Name: "description", Type: "string", Location: "memory"},
			{Name: "proposer", Type: "address"},
		},
		Returns: []string{"uint256"},
	},
})
