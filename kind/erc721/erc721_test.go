package erc721

import (
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

import "@openzeppelin/contracts/token/ERC721/ERC721.sol";

contract MyToken is ERC721 {
    constructor() ERC721("MyToken", "MTK") {}
}
`
	got, err := printer.Print(c)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFull(t *testing.T) {
	c, err := Build(Options{
		BaseURI:     common.Ptr("https://example.com/"),
		Enumerable:  common.Ptr(true),
		URIStorage:  common.Ptr(true),
		Mintable:    common.Ptr(true),
		Incremental: common.Ptr(true),
		Options:     common.Options{Access: common.Ptr(common.AccessOwnable)},
	})
	require.NoError(t, err)
	want := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.9;

import "@openzeppelin/contracts/token/ERC721/ERC721.sol";
import "@openzeppelin/contracts/token/ERC721/extensions/ERC721Enumerable.sol";
import "@openzeppelin/contracts/token/ERC721/extensions/ERC721URIStorage.sol";
import "@openzeppelin/contracts/access/Ownable.sol";
import "@openzeppelin/contracts/utils/Counters.sol";

contract MyToken is ERC721, ERC721Enumerable, ERC721URIStorage, Ownable {
    using Counters for Counters.Counter;

    Counters.Counter private _tokenIdCounter;

    constructor() ERC721("MyToken", "MTK") {}

    function safeMint(address to, string memory uri) public onlyOwner {
        uint256 tokenId = _tokenIdCounter.current();
        _tokenIdCounter.increment();
        _safeMint(to, tokenId);
        _setTokenURI(tokenId, uri);
    }

    // The following functions are overrides required by Solidity.

    function _beforeTokenTransfer(address from, address to, uint256 firstTokenId, uint256 batchSize)
        internal
        override(ERC721, ERC721Enumerable)
    {
        super._beforeTokenTransfer(from, to, firstTokenId, batchSize);
    }

    function _burn(uint256 tokenId) internal override(ERC721, ERC721URIStorage) {
        super._burn(tokenId);
    }

    function tokenURI(uint256 tokenId)
        public
        view
        override(ERC721, ERC721URIStorage)
        returns (string memory)
    {
        return super.tokenURI(tokenId);
    }

    function supportsInterface(bytes4 interfaceId)
        public
        view
        override(ERC721, ERC721Enumerable, ERC721URIStorage)
        returns (bool)
    {
        return super.supportsInterface(interfaceId);
    }

    function _baseURI() internal pure override returns (string memory) {
        return "https://example.com/";
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
	t.Run("explicit token ids", func(t *testing.T) {
		c, err := Build(Options{Mintable: common.Ptr(true)})
		require.NoError(t, err)
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "function safeMint(address to, uint256 tokenId) public onlyOwner {\n        _safeMint(to, tokenId);\n    }")
		assert.NotContains(t, src, "Counters")
	})

	t.Run("votes", func(t *testing.T) {
		c, err := Build(Options{Votes: common.Ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, []string{"ERC721", "EIP712", "ERC721Votes"}, c.ParentNames())
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, `EIP712("MyToken", "1")`)
		assert.Contains(t, src, "override(ERC721, ERC721Votes)")
	})

	t.Run("upgradeable counters", func(t *testing.T) {
		c, err := Build(Options{
			Mintable:    common.Ptr(true),
			Incremental: common.Ptr(true),
			Options:     common.Options{Upgradeable: common.Ptr(common.UpgradeableTransparent)},
		})
		require.NoError(t, err)
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, "using CountersUpgradeable for CountersUpgradeable.Counter;")
		assert.Contains(t, src, "CountersUpgradeable.Counter private _tokenIdCounter;")
		assert.Contains(t, src, `import "@openzeppelin/contracts-upgradeable/utils/CountersUpgradeable.sol";`)
		assert.Contains(t, src, "__ERC721_init(\"MyToken\", \"MTK\");\n        __Ownable_init();")
	})

	t.Run("pausable roles", func(t *testing.T) {
		c, err := Build(Options{
			Pausable: common.Ptr(true),
			Options:  common.Options{Access: common.Ptr(common.AccessRoles)},
		})
		require.NoError(t, err)
		src, err := printer.Print(c)
		require.NoError(t, err)
		assert.Contains(t, src, `bytes32 public constant PAUSER_ROLE = keccak256("PAUSER_ROLE");`)
		assert.Contains(t, src, "override(ERC721, AccessControl)")
	})
}

func TestIncrementalRequiresMintable(t *testing.T) {
	_, err := Build(Options{Incremental: common.Ptr(true)})
	var oe *solgen.OptionsError
	require.ErrorAs(t, err, &oe)
	assert.Contains(t, oe.Messages, "incremental")
}

func TestBlueprint(t *testing.T) {
	bp := Blueprint()
	assert.Equal(t, 2304, bp.Count())
	var rejected int
	for comb := range optspace.Alternatives(bp) {
		var o Options
		require.NoError(t, optspace.Decode(comb, &o))
		c, err := Build(o)
		if err != nil {
			require.True(t, solgen.IsOptionsError(err), err)
			rejected++
			continue
		}
		_, err = printer.Print(c)
		require.NoError(t, err)
	}
	assert.Equal(t, 576, rejected)
}
