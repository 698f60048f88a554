package smartasset

import "github.com/syssam/solgen/compiler/contract"

const basePath = "@arianee/contracts/SmartAsset/"

func module(name string) contract.Reference {
	return contract.Reference{Name: name, Path: basePath + name + ".sol"}
}

// Modules composed into smart assets.
var (
	SmartAssetBase                  = module("SmartAssetBase")
	SmartAssetURIStorage            = module("SmartAssetURIStorage")
	SmartAssetURIStorageOverridable = module("SmartAssetURIStorageOverridable")
	SmartAssetUpdatable             = module("SmartAssetUpdatable")
	SmartAssetRecoverable           = module("SmartAssetRecoverable")
	SmartAssetBurnable              = module("SmartAssetBurnable")
	SmartAssetSoulbound             = module("SmartAssetSoulbound")
	SmartAssetShared                = module("SmartAssetShared")
)

var functions = contract.DefineFunctions(map[string]contract.Signature{
	"setTokenTransferKey": {
		Kind: contract.Public,
		Args: []contract.Argument{
			{Name: "tokenId", Type: "uint256"},
			{Name: "key", Type: "address"},
		},
	},
	"requestToken": {
		Kind: contract.Public,
		Args: []contract.Argument{
			{Name: "tokenId", Type: "uint256"},
			{Name: "signature", Type: "bytes", Location: "calldata"},
			{Name: "newOwner", Type: "address"},
			{Name: "keepTransferKey", Type: "bool"},
		},
	},
	"hydrateToken": {
		Kind: contract.Public,
		Args: []contract.Argument{
			{Name: "tokenHydratationParams", Type: "TokenHydratationParams", Location: "memory"},
		},
	},
	"tokenURI": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{{Name: "tokenId", Type: "uint256"}},
		Returns:    []string{"string memory"},
	},
	"supportsInterface": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{{Name: "interfaceId", Type: "bytes4"}},
		Returns:    []string{"bool"},
	},
	"_beforeTokenTransfer": {
		Kind: contract.Internal,
		Args: []contract.Argument{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
			{Name: "batchSize", Type: "uint256"},
		},
	},
	"_transfer": {
		Kind: contract.Internal,
		Args: []contract.Argument{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
		},
	},
	"_afterFirstTokenTransfer": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "tokenId", Type: "uint256"}},
	},
	"_burn": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "tokenId", Type: "uint256"}},
	},
	"_baseURI": {
		Kind:       contract.Internal,
		Mutability: contract.View,
		Returns:    []string{"string memory"},
	},
})
