package common

import "github.com/syssam/solgen/compiler/contract"

// Modules shared across kinds.
var (
	Context         = contract.Reference{Name: "Context", Path: contract.ContractsPrefix + "utils/Context.sol"}
	Ownable         = contract.Reference{Name: "Ownable", Path: contract.ContractsPrefix + "access/Ownable.sol"}
	AccessControl   = contract.Reference{Name: "AccessControl", Path: contract.ContractsPrefix + "access/AccessControl.sol"}
	Pausable        = contract.Reference{Name: "Pausable", Path: contract.ContractsPrefix + "security/Pausable.sol"}
	Counters        = contract.Reference{Name: "Counters", Path: contract.ContractsPrefix + "utils/Counters.sol"}
	Initializable   = contract.Reference{Name: "Initializable", Path: contract.UpgradeablePrefix + "proxy/utils/Initializable.sol"}
	UUPSUpgradeable = contract.Reference{Name: "UUPSUpgradeable", Path: contract.UpgradeablePrefix + "proxy/utils/UUPSUpgradeable.sol"}
)

// Functions shared across kinds.
var Functions = contract.DefineFunctions(map[string]contract.Signature{
	"pause":   {Kind: contract.Public},
	"unpause": {Kind: contract.Public},
	"_authorizeUpgrade": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "newImplementation", Type: "address"}},
	},
	"supportsInterface": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{{Name: "interfaceId", Type: "bytes4"}},
		Returns:    []string{"bool"},
	},
})
