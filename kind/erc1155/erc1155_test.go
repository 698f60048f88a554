package erc1155

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/compiler/printer"
	"github.com/syssam/solgen/kind/common"
)

func TestBuildDefaults(t *testing.T) {
	c, err := Build(Options{})
	require.NoError(t, err)
	want := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.9;

import "@openzeppelin/contracts/token/ERC1155/ERC1155.sol";
import "@openzeppelin/contracts/access/Ownable.sol";

contract MyToken is ERC1155, Ownable {
    constructor() ERC1155("") {}

    function setURI(string memory newuri) public onlyOwner {
        _setURI(newuri);
    }
}
`
	got, err := printer.Print(c)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Run("fixed uri without access", func(t *testing.T) {
		c, err := Build(Options{UpdatableURI: common.Ptr(false), URI: common.Ptr("ipfs://x/{id}")})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC1155"}, c.ParentNames())
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, `constructor() ERC1155("ipfs://x/{id}") {}`)
	})

	t.Run("mintable pausable supply with roles", func(t *testing.T) {
		c, err := Build(Options{
			UpdatableURI: common.Ptr(false),
			Mintable:     common.Ptr(true),
			Pausable:     common.Ptr(true),
			Supply:       common.Ptr(true),
			Options:      common.Options{Access: common.Ptr(common.AccessRoles)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC1155", "Pausable", "AccessControl", "ERC1155Supply"}, c.ParentNames())

		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "function mintBatch(address to, uint256[] memory ids, uint256[] memory amounts, bytes memory data)\n        public\n        onlyRole(MINTER_ROLE)\n    {\n        _mintBatch(to, ids, amounts, data);\n    }")
		assert.Contains(t, src, "        whenNotPaused\n        override(ERC1155, ERC1155Supply)\n")
		assert.Contains(t, src, "override(ERC1155, AccessControl)")
	})
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
