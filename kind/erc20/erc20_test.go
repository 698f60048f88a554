package erc20

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/compiler/printer"
	"github.com/syssam/solgen/kind/common"
)

func TestBuildDefaults(t *testing.T) {
	c, err := Build(Options{})
	require.NoError(t, err)
	want := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.9;

import "@openzeppelin/contracts/token/ERC20/ERC20.sol";
import "@openzeppelin/contracts/token/ERC20/extensions/ERC20Permit.sol";

contract MyToken is ERC20, ERC20Permit {
    constructor() ERC20("MyToken", "MTK") ERC20Permit("MyToken") {}
}
`
	got, err := printer.Print(c)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Run("explicit false disables permit", func(t *testing.T) {
		c, err := Build(Options{Permit: common.Ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC20"}, c.ParentNames())
	})

	t.Run("votes implies permit", func(t *testing.T) {
		c, err := Build(Options{Permit: common.Ptr(false), Votes: common.Ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC20", "ERC20Permit", "ERC20Votes"}, c.ParentNames())
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "function _afterTokenTransfer(address from, address to, uint256 amount)\n        internal\n        override(ERC20, ERC20Votes)\n")
		assert.Contains(t, src, "function _mint(address to, uint256 amount)\n        internal\n        override(ERC20, ERC20Votes)\n")
		assert.Contains(t, src, "super._burn(account, amount);")
	})

	t.Run("snapshots and pausable share the transfer hook", func(t *testing.T) {
		c, err := Build(Options{
			Snapshots: common.Ptr(true),
			Pausable:  common.Ptr(true),
			Options:   common.Options{Access: common.Ptr(common.AccessOwnable)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC20", "ERC20Snapshot", "Ownable", "Pausable", "ERC20Permit"}, c.ParentNames())
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "        whenNotPaused\n        override(ERC20, ERC20Snapshot)\n")
		assert.Contains(t, src, "    function snapshot() public onlyOwner {\n        _snapshot();\n    }\n")
		assert.Contains(t, src, "    function pause() public onlyOwner {\n        _pause();\n    }\n")
	})

	t.Run("mintable without access becomes ownable", func(t *testing.T) {
		c, err := Build(Options{Mintable: common.Ptr(true)})
		require.NoError(t, err)
		assert.True(t, c.HasParent("Ownable"))
		assert.True(t, RequiresAccessControl(Options{Mintable: common.Ptr(true)}))
		assert.False(t, RequiresAccessControl(Options{}))
	})

	t.Run("uups with roles", func(t *testing.T) {
		c, err := Build(Options{
			Mintable: common.Ptr(true),
			Options: common.Options{
				Access:      common.Ptr(common.AccessRoles),
				Upgradeable: common.Ptr(common.UpgradeableUUPS),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Initializable", "ERC20", "AccessControl", "ERC20Permit", "UUPSUpgradeable"}, c.ParentNames())
		assert.Equal(t, []string{
			"_grantRole(DEFAULT_ADMIN_ROLE, msg.sender);",
			"_grantRole(MINTER_ROLE, msg.sender);",
			"_grantRole(UPGRADER_ROLE, msg.sender);",
		}, c.ConstructorCode)

		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "contract MyToken is Initializable, ERC20Upgradeable, AccessControlUpgradeable, ERC20PermitUpgradeable, UUPSUpgradeable {")
		assert.Contains(t, src, `import "@openzeppelin/contracts-upgradeable/token/ERC20/extensions/ERC20PermitUpgradeable.sol";`)
		assert.Contains(t, src, `__ERC20Permit_init("MyToken");`)
		assert.Contains(t, src, "__UUPSUpgradeable_init();")
		assert.Contains(t, src, "        onlyRole(UPGRADER_ROLE)\n        override\n    {}\n")
	})
}

func TestPremint(t *testing.T) {
	tests := []struct {
		premint string
		want    []string
	}{
		{"0", nil},
		{"", nil},
		{"000.000", nil},
		{"1000", []string{"_mint(msg.sender, 1000 * 10 ** decimals());"}},
		{"1.5", []string{"_mint(msg.sender, 15 * 10 ** (decimals() - 1));"}},
		{"0.25", []string{"_mint(msg.sender, 25 * 10 ** (decimals() - 2));"}},
		{"2e3", []string{"_mint(msg.sender, 2000 * 10 ** decimals());"}},
		{"1.5e1", []string{"_mint(msg.sender, 15 * 10 ** decimals());"}},
	}
	for _, tt := range tests {
		t.Run(tt.premint, func(t *testing.T) {
			c, err := Build(Options{Premint: common.Ptr(tt.premint)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ConstructorCode)
		})
	}

	for _, amount := range []string{"1,000", "1e78", "1e99999999999999999999"} {
		t.Run("invalid amount "+amount, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = Build(Options{Premint: common.Ptr(amount)})
			})
			var oe *solgen.OptionsError
			require.ErrorAs(t, err, &oe)
			assert.Contains(t, oe.Messages, "premint")
		})
	}

	t.Run("largest exponent", func(t *testing.T) {
		c, err := Build(Options{Premint: common.Ptr("1e77")})
		require.NoError(t, err)
		assert.Equal(t, []string{"_mint(msg.sender, 1" + strings.Repeat("0", 77) + " * 10 ** decimals());"}, c.ConstructorCode)
	})
}

func TestBlueprint(t *testing.T) {
	bp := Blueprint()
	assert.Equal(t, 2304, bp.Count())
	for comb := range optspace.Alternatives(bp) {
		var o Options
		require.NoError(t, optspace.Decode(comb, &o))
		c, err := Build(o)
		require.NoError(t, err)
		_, err = printer.Print(c)
		require.NoError(t, err)
	}
}
