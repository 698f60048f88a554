// Package contract provides the mutable composition model for one generated
// Solidity contract.
//
// A kind builder creates a Builder, attaches vendored parent modules base-first,
// and registers the functions each attached module contributes to:
//
//	b := contract.NewBuilder("MyToken")
//	b.AddParent(erc20, contract.String("MyToken"), contract.String("MTK"))
//	b.AddParent(erc20Votes)
//	b.AddOverride(erc20, afterTokenTransfer)
//	b.AddOverride(erc20Votes, afterTokenTransfer)
//	c := b.Contract()
//
// # Overrides
//
// The model never inspects real inheritance. The set of providers recorded for
// a signature comes only from explicit AddOverride calls and shrinks only
// through RemoveOverride. Two or more providers require an explicit
// override clause naming all of them; the printer consumes the set verbatim.
//
// Overriding through a reference that is not an attached parent, or removing
// an override that was never registered, is a builder defect and panics with
// a *solgen.ConfigurationError.
//
// # Upgradeable Variants
//
// When a contract is marked upgradeable, OpenZeppelin modules are rendered
// through their transpiled counterparts: ERC20 becomes ERC20Upgradeable and
// its import moves under @openzeppelin/contracts-upgradeable. TransformName,
// ImportPath, ImportPaths and Footprint apply this mapping.
package contract
