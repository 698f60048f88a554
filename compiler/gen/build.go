package gen

import (
	"fmt"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/kind/custom"
	"github.com/syssam/solgen/kind/erc1155"
	"github.com/syssam/solgen/kind/erc20"
	"github.com/syssam/solgen/kind/erc721"
	"github.com/syssam/solgen/kind/governor"
	"github.com/syssam/solgen/kind/smartasset"
)

// Build composes the contract described by o. Builder defects, raised as
// *solgen.ConfigurationError panics, are returned as errors.
func Build(o Options) (c *contract.Contract, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*solgen.ConfigurationError)
			if !ok {
				panic(r)
			}
			c, err = nil, ce
		}
	}()
	switch o := deref(o).(type) {
	case SmartAsset:
		return smartasset.Build(o.Options)
	case ERC20:
		return erc20.Build(o.Options)
	case ERC721:
		return erc721.Build(o.Options)
	case ERC1155:
		return erc1155.Build(o.Options)
	case Governor:
		return governor.Build(o.Options)
	case Custom:
		return custom.Build(o.Options)
	}
	return nil, fmt.Errorf("gen: unsupported options %T", o)
}
