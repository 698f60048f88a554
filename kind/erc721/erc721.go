package erc721

import (
	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

const extensions = contract.ContractsPrefix + "token/ERC721/extensions/"

// Modules composed into ERC721 tokens.
var (
	ERC721           = contract.Reference{Name: "ERC721", Path: contract.ContractsPrefix + "token/ERC721/ERC721.sol"}
	ERC721Enumerable = contract.Reference{Name: "ERC721Enumerable", Path: extensions + "ERC721Enumerable.sol"}
	ERC721URIStorage = contract.Reference{Name: "ERC721URIStorage", Path: extensions + "ERC721URIStorage.sol"}
	ERC721Burnable   = contract.Reference{Name: "ERC721Burnable", Path: extensions + "ERC721Burnable.sol"}
	ERC721Votes      = contract.Reference{Name: "ERC721Votes", Path: extensions + "ERC721Votes.sol"}
	EIP712           = contract.Reference{Name: "EIP712", Path: contract.ContractsPrefix + "utils/cryptography/EIP712.sol"}
)

var transferArgs = []contract.Argument{
	{Name: "from", Type: "address"},
	{Name: "to", Type: "address"},
	{Name: "firstTokenId", Type: "uint256"},
	{Name: "batchSize", Type: "uint256"},
}

var functions = contract.DefineFunctions(map[string]contract.Signature{
	"_beforeTokenTransfer": {Kind: contract.Internal, Args: transferArgs},
	"_afterTokenTransfer":  {Kind: contract.Internal, Args: transferArgs},
	"_burn": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "tokenId", Type: "uint256"}},
	},
	"tokenURI": {
		Kind:       contract.Public,
		Mutability: contract.View,
		Args:       []contract.Argument{{Name: "tokenId", Type: "uint256"}},
		Returns:    []string{"string memory"},
	},
	"_baseURI": {
		Kind:       contract.Internal,
		Mutability: contract.Pure,
		Returns:    []string{"string memory"},
	},
})

// Build composes an ERC721 token from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	if *o.Incremental && !*o.Mintable {
		return nil, solgen.NewOptionsError("incremental", "incremental ids require a mintable token")
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}
	access, upgradeable := *o.Access, *o.Upgradeable

	b := contract.NewBuilder(name)
	common.AddInitializable(b, upgradeable)
	addBase(b, *o.Name, *o.Symbol)
	if *o.BaseURI != "" {
		baseURI := functions.Get("_baseURI")
		b.AddOverride(ERC721, baseURI)
		b.SetFunctionBody([]string{"return " + contract.String(*o.BaseURI).Expr() + ";"}, baseURI)
	}
	if *o.Enumerable {
		b.AddParent(ERC721Enumerable)
		b.AddOverride(ERC721Enumerable, functions.Get("_beforeTokenTransfer"))
		b.AddOverride(ERC721Enumerable, common.Functions.Get("supportsInterface"))
	}
	if *o.URIStorage {
		b.AddParent(ERC721URIStorage)
		b.AddOverride(ERC721URIStorage, functions.Get("_burn"))
		b.AddOverride(ERC721URIStorage, functions.Get("tokenURI"))
		b.AddOverride(ERC721URIStorage, common.Functions.Get("supportsInterface"))
	}
	if *o.Burnable {
		b.AddParent(ERC721Burnable)
	}
	if *o.Pausable {
		common.AddPausable(b, access, functions.Get("_beforeTokenTransfer"))
	}
	if *o.Mintable {
		addMintable(b, access, *o.Incremental, *o.URIStorage)
	}
	if *o.Votes {
		b.AddParent(EIP712, contract.String(*o.Name), contract.String("1"))
		b.AddParent(ERC721Votes)
		b.AddOverride(ERC721Votes, functions.Get("_afterTokenTransfer"))
	}
	common.SetAccessControl(b, access)
	common.SetUpgradeable(b, upgradeable, access)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}

func addBase(b *contract.Builder, name, symbol string) {
	b.AddParent(ERC721, contract.String(name), contract.String(symbol))
	for _, fn := range []string{"_beforeTokenTransfer", "_afterTokenTransfer", "_burn", "tokenURI"} {
		b.AddOverride(ERC721, functions.Get(fn))
	}
	b.AddOverride(ERC721, common.Functions.Get("supportsInterface"))
}

// mintFunction returns the safeMint signature: token ids are passed in
// unless they are assigned incrementally, and a uri is taken when tokens
// store their own.
func mintFunction(incremental, uriStorage bool) contract.Signature {
	sig := contract.Signature{
		Name: "safeMint",
		Kind: contract.Public,
		Args: []contract.Argument{{Name: "to", Type: "address"}},
	}
	if !incremental {
		sig.Args = append(sig.Args, contract.Argument{Name: "tokenId", Type: "uint256"})
	}
	if uriStorage {
		sig.Args = append(sig.Args, contract.Argument{Name: "uri", Type: "string", Location: "memory"})
	}
	return sig
}

func addMintable(b *contract.Builder, access common.Access, incremental, uriStorage bool) {
	fn := mintFunction(incremental, uriStorage)
	common.RequireAccessControl(b, fn, access, "MINTER")
	if incremental {
		b.AddUsing(common.Counters, "Counters.Counter")
		b.AddVariable(b.Contract().TransformName(common.Counters) + ".Counter private _tokenIdCounter;")
		b.AddFunctionCode("uint256 tokenId = _tokenIdCounter.current();", fn)
		b.AddFunctionCode("_tokenIdCounter.increment();", fn)
	}
	b.AddFunctionCode("_safeMint(to, tokenId);", fn)
	if uriStorage {
		b.AddFunctionCode("_setTokenURI(tokenId, uri);", fn)
	}
}
