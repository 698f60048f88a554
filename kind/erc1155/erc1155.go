package erc1155

import (
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

const extensions = contract.ContractsPrefix + "token/ERC1155/extensions/"

// Modules composed into ERC1155 tokens.
var (
	ERC1155         = contract.Reference{Name: "ERC1155", Path: contract.ContractsPrefix + "token/ERC1155/ERC1155.sol"}
	ERC1155Burnable = contract.Reference{Name: "ERC1155Burnable", Path: extensions + "ERC1155Burnable.sol"}
	ERC1155Supply   = contract.Reference{Name: "ERC1155Supply", Path: extensions + "ERC1155Supply.sol"}
)

var functions = contract.DefineFunctions(map[string]contract.Signature{
	"_beforeTokenTransfer": {
		Kind: contract.Internal,
		Args: []contract.Argument{
			{Name: "operator", Type: "address"},
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "ids", Type: "uint256[]", Location: "memory"},
			{Name: "amounts", Type: "uint256[]", Location: "memory"},
			{Name: "data", Type: "bytes", Location: "memory"},
		},
	},
	"setURI": {
		Kind: contract.Public,
		Args: []contract.Argument{{Name: "newuri", Type: "string", Location: "memory"}},
	},
	"mint": {
		Kind: contract.Public,
		Args: []contract.Argument{
			{Name: "account", Type: "address"},
			{Name: "id", Type: "uint256"},
			{Name: "amount", Type: "uint256"},
			{Name: "data", Type: "bytes", Location: "memory"},
		},
	},
	"mintBatch": {
		Kind: contract.Public,
		Args: []contract.Argument{
			{Name: "to", Type: "address"},
			{Name: "ids", Type: "uint256[]", Location: "memory"},
			{Name: "amounts", Type: "uint256[]", Location: "memory"},
			{Name: "data", Type: "bytes", Location: "memory"},
		},
	},
})

// Build composes an ERC1155 token from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}
	access, upgradeable := *o.Access, *o.Upgradeable

	b := contract.NewBuilder(name)
	common.AddInitializable(b, upgradeable)
	b.AddParent(ERC1155, contract.String(*o.URI))
	b.AddOverride(ERC1155, functions.Get("_beforeTokenTransfer"))
	b.AddOverride(ERC1155, common.Functions.Get("supportsInterface"))

	if *o.UpdatableURI {
		setURI := functions.Get("setURI")
		common.RequireAccessControl(b, setURI, access, "URI_SETTER")
		b.AddFunctionCode("_setURI(newuri);", setURI)
	}
	if *o.Pausable {
		common.AddPausable(b, access, functions.Get("_beforeTokenTransfer"))
	}
	if *o.Burnable {
		b.AddParent(ERC1155Burnable)
	}
	if *o.Mintable {
		mint, mintBatch := functions.Get("mint"), functions.Get("mintBatch")
		common.RequireAccessControl(b, mint, access, "MINTER")
		b.AddFunctionCode("_mint(account, id, amount, data);", mint)
		common.RequireAccessControl(b, mintBatch, access, "MINTER")
		b.AddFunctionCode("_mintBatch(to, ids, amounts, data);", mintBatch)
	}
	if *o.Supply {
		b.AddParent(ERC1155Supply)
		b.AddOverride(ERC1155Supply, functions.Get("_beforeTokenTransfer"))
	}
	common.SetAccessControl(b, access)
	common.SetUpgradeable(b, upgradeable, access)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}
