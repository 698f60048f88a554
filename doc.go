// Package solgen composes Solidity token contracts from declarative options.
//
// The kind packages under kind/ turn options into a contract model
// (compiler/contract), which compiler/printer renders as source text.
// compiler/gen enumerates whole option spaces for test corpora, bundle
// vendors a contract's transitive imports out of a catalog, and corpus
// indexes generated contracts in a SQL database.
//
// This package holds the error classes shared by all of them.
package solgen
