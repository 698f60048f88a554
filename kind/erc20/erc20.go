package erc20

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/common"
)

const extensions = contract.ContractsPrefix + "token/ERC20/extensions/"

// Modules composed into ERC20 tokens.
var (
	ERC20          = contract.Reference{Name: "ERC20", Path: contract.ContractsPrefix + "token/ERC20/ERC20.sol"}
	ERC20Burnable  = contract.Reference{Name: "ERC20Burnable", Path: extensions + "ERC20Burnable.sol"}
	ERC20Snapshot  = contract.Reference{Name: "ERC20Snapshot", Path: extensions + "ERC20Snapshot.sol"}
	ERC20Permit    = contract.Reference{Name: "ERC20Permit", Path: extensions + "ERC20Permit.sol"}
	ERC20Votes     = contract.Reference{Name: "ERC20Votes", Path: extensions + "ERC20Votes.sol"}
	ERC20FlashMint = contract.Reference{Name: "ERC20FlashMint", Path: extensions + "ERC20FlashMint.sol"}
)

var transferArgs = []contract.Argument{
	{Name: "from", Type: "address"},
	{Name: "to", Type: "address"},
	{Name: "amount", Type: "uint256"},
}

var functions = contract.DefineFunctions(map[string]contract.Signature{
	"_beforeTokenTransfer": {Kind: contract.Internal, Args: transferArgs},
	"_afterTokenTransfer":  {Kind: contract.Internal, Args: transferArgs},
	"_burn": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "account", Type: "address"}, {Name: "amount", Type: "uint256"}},
	},
	"_mint": {
		Kind: contract.Internal,
		Args: []contract.Argument{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
	},
	"mint": {
		Kind: contract.Public,
		Args: []contract.Argument{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
	},
	"snapshot": {Kind: contract.Public},
})

var premintPattern = regexp.MustCompile(`^(\d*)(?:\.(\d+))?(?:e(\d+))?$`)

// Build composes an ERC20 token from opts.
func Build(opts Options) (*contract.Contract, error) {
	o := WithDefaults(opts)
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	if err := validatePremint(*o.Premint); err != nil {
		return nil, err
	}
	name, err := common.ToIdentifier(*o.Name, true)
	if err != nil {
		return nil, err
	}
	access, upgradeable := *o.Access, *o.Upgradeable

	b := contract.NewBuilder(name)
	common.AddInitializable(b, upgradeable)
	addBase(b, *o.Name, *o.Symbol)
	if *o.Burnable {
		b.AddParent(ERC20Burnable)
	}
	if *o.Snapshots {
		addSnapshot(b, access)
	}
	if *o.Pausable {
		common.AddPausable(b, access, functions.Get("_beforeTokenTransfer"))
	}
	addPremint(b, *o.Premint)
	if *o.Mintable {
		common.RequireAccessControl(b, functions.Get("mint"), access, "MINTER")
		b.AddFunctionCode("_mint(to, amount);", functions.Get("mint"))
	}
	// Votes requires Permit.
	if *o.Permit || *o.Votes {
		b.AddParent(ERC20Permit, contract.String(*o.Name))
	}
	if *o.Votes {
		addVotes(b)
	}
	if *o.Flashmint {
		b.AddParent(ERC20FlashMint)
	}
	common.SetAccessControl(b, access)
	common.SetUpgradeable(b, upgradeable, access)
	common.SetInfo(b, o.Info)
	return b.Contract(), nil
}

func addBase(b *contract.Builder, name, symbol string) {
	b.AddParent(ERC20, contract.String(name), contract.String(symbol))
	for _, fn := range []string{"_beforeTokenTransfer", "_afterTokenTransfer", "_mint", "_burn"} {
		b.AddOverride(ERC20, functions.Get(fn))
	}
}

func addSnapshot(b *contract.Builder, access common.Access) {
	b.AddParent(ERC20Snapshot)
	b.AddOverride(ERC20Snapshot, functions.Get("_beforeTokenTransfer"))
	snapshot := functions.Get("snapshot")
	common.RequireAccessControl(b, snapshot, access, "SNAPSHOT")
	b.AddFunctionCode("_snapshot();", snapshot)
}

func addVotes(b *contract.Builder) {
	b.AddParent(ERC20Votes)
	for _, fn := range []string{"_afterTokenTransfer", "_mint", "_burn"} {
		b.AddOverride(ERC20Votes, functions.Get(fn))
	}
}

// maxPremintExponent bounds the exponent of a premint amount; 10**78
// exceeds uint256.
const maxPremintExponent = 77

func validatePremint(amount string) error {
	m := premintPattern.FindStringSubmatch(amount)
	if m == nil {
		return solgen.NewOptionsError("premint", "not a valid number")
	}
	if m[3] == "" {
		return nil
	}
	if exponent, err := strconv.Atoi(m[3]); err != nil || exponent > maxPremintExponent {
		return solgen.NewOptionsError("premint", fmt.Sprintf("exponent exceeds %d", maxPremintExponent))
	}
	return nil
}

// addPremint mints amount whole tokens to the deployer, scaling by the
// token decimals. Zero amounts mint nothing.
func addPremint(b *contract.Builder, amount string) {
	m := premintPattern.FindStringSubmatch(amount)
	if m == nil {
		return
	}
	integer := strings.TrimLeft(m[1], "0")
	decimals := strings.TrimRight(m[2], "0")
	exponent, _ := strconv.Atoi(m[3])
	if strings.Trim(integer+decimals, "0") == "" {
		return
	}
	place := len(decimals) - exponent
	units := strings.TrimLeft(integer+decimals, "0") + strings.Repeat("0", max(0, -place))
	exp := "decimals()"
	if place > 0 {
		exp = fmt.Sprintf("(decimals() - %d)", place)
	}
	b.AddConstructorCode(fmt.Sprintf("_mint(msg.sender, %s * 10 ** %s);", units, exp))
}
