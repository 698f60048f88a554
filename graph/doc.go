// Package graph provides reachability over string-keyed dependency graphs.
//
// A dependency graph maps an import path to the paths it imports directly:
//
//	deps := map[string][]string{
//	    "MyToken.sol": {"@openzeppelin/contracts/token/ERC20/ERC20.sol"},
//	    "@openzeppelin/contracts/token/ERC20/ERC20.sol": {"@openzeppelin/contracts/utils/Context.sol"},
//	}
//
// # Reachability
//
// Reachable returns every path reachable from a root, the root included:
//
//	graph.Reachable(deps, "MyToken.sol")
//	// [MyToken.sol @openzeppelin/.../ERC20.sol @openzeppelin/.../Context.sol]
//
// Cycles are tolerated; each path is visited once.
//
// # Transitive Closure
//
// TransitiveClosure precomputes, for every key, the sorted set of paths it
// reaches through one or more edges. The vendor catalog stores its import
// edges in this form so that bundling a contract only needs to look at the
// contract's direct imports.
package graph
