package gen

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/syssam/solgen"
	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/compiler/optspace"
	"github.com/syssam/solgen/compiler/printer"
	"github.com/syssam/solgen/kind/custom"
	"github.com/syssam/solgen/kind/erc1155"
	"github.com/syssam/solgen/kind/erc20"
	"github.com/syssam/solgen/kind/erc721"
	"github.com/syssam/solgen/kind/governor"
	"github.com/syssam/solgen/kind/smartasset"
)

// Blueprints maps every kind to its option space.
var Blueprints = map[Kind]func() optspace.Blueprint{
	KindSmartAsset: smartasset.Blueprint,
	KindERC20:      erc20.Blueprint,
	KindERC721:     erc721.Blueprint,
	KindERC1155:    erc1155.Blueprint,
	KindGovernor:   governor.Blueprint,
	KindCustom:     custom.Blueprint,
}

// GeneratedContract is a built combination.
type GeneratedContract struct {
	ID       string
	Options  Options
	Contract *contract.Contract
}

// GeneratedSource is a printed combination.
type GeneratedSource struct {
	*GeneratedContract
	Source string
}

// Count returns the number of combinations of kinds, before building.
// No kinds means all kinds.
func Count(kinds ...Kind) int {
	n := 0
	for _, k := range selectKinds(kinds) {
		n += Blueprints[k]().Count()
	}
	return n
}

// GenerateOptions yields every combination of kinds in AllKinds order,
// each kind in blueprint order. No kinds means all kinds.
func GenerateOptions(kinds ...Kind) iter.Seq2[Options, error] {
	return generateOptions(selectKinds(kinds), nil)
}

func selectKinds(kinds []Kind) []Kind {
	if len(kinds) == 0 {
		return AllKinds
	}
	var out []Kind
	for _, k := range AllKinds {
		if slices.Contains(kinds, k) {
			out = append(out, k)
		}
	}
	return out
}

func generateOptions(kinds []Kind, filter *Filter) iter.Seq2[Options, error] {
	return func(yield func(Options, error) bool) {
		for _, kind := range kinds {
			for comb := range optspace.Alternatives(Blueprints[kind]()) {
				ok, err := filter.Match(kind, comb.Map())
				if err != nil {
					yield(nil, err)
					return
				}
				if !ok {
					continue
				}
				o, err := FromCombination(kind, comb)
				if !yield(o, err) || err != nil {
					return
				}
			}
		}
	}
}

// Generate builds o and assigns its id. Unsupported option sets fail with
// a *solgen.OptionsError; anything else is a *GenerationError.
func Generate(o Options) (*GeneratedContract, error) {
	id, err := Digest(o)
	if err != nil {
		return nil, NewGenerationError(PhaseBuild, o, "", err)
	}
	c, err := Build(o)
	switch {
	case solgen.IsOptionsError(err):
		return nil, err
	case err != nil:
		return nil, NewGenerationError(PhaseBuild, o, id, err)
	}
	return &GeneratedContract{ID: id, Options: o, Contract: c}, nil
}

// GenerateContracts yields the contracts selected by cfg. Combinations the
// builders reject with an OptionsError are skipped; the first other error
// is yielded and ends the sequence.
//
// For SubsetMinimalCover the whole space is built first, then reduced
// per upgradeability: upgradeable contracts first, then the rest.
func GenerateContracts(cfg *Config) iter.Seq2[*GeneratedContract, error] {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	all := func(yield func(*GeneratedContract, error) bool) {
		skipped := 0
		for o, err := range generateOptions(selectKinds(cfg.Kinds), cfg.filter) {
			if err != nil {
				yield(nil, err)
				return
			}
			gc, err := Generate(o)
			if solgen.IsOptionsError(err) {
				skipped++
				log.Debug("skip unsupported combination", zap.String("kind", string(o.Kind())), zap.Error(err))
				continue
			}
			if !yield(gc, err) || err != nil {
				return
			}
		}
		log.Debug("combinations skipped", zap.Int("count", skipped))
	}
	if cfg.Subset != SubsetMinimalCover {
		return all
	}
	return func(yield func(*GeneratedContract, error) bool) {
		var upgradeable, regular []*GeneratedContract
		for gc, err := range all {
			if err != nil {
				yield(nil, err)
				return
			}
			if gc.Contract.Upgradeable {
				upgradeable = append(upgradeable, gc)
			} else {
				regular = append(regular, gc)
			}
		}
		footprint := func(gc *GeneratedContract) []string { return gc.Contract.Footprint() }
		cover := append(FindCover(upgradeable, footprint), FindCover(regular, footprint)...)
		log.Info("minimal cover",
			zap.Int("contracts", len(upgradeable)+len(regular)),
			zap.Int("kept", len(cover)),
		)
		for _, gc := range cover {
			if !yield(gc, nil) {
				return
			}
		}
	}
}

// Print renders a generated contract.
func Print(gc *GeneratedContract, opts ...printer.Option) (*GeneratedSource, error) {
	src, err := printer.Print(gc.Contract, opts...)
	if err != nil {
		return nil, NewGenerationError(PhasePrint, gc.Options, gc.ID, err)
	}
	return &GeneratedSource{GeneratedContract: gc, Source: src}, nil
}

// GenerateSources yields the printed contracts selected by cfg.
func GenerateSources(cfg *Config) iter.Seq2[*GeneratedSource, error] {
	return func(yield func(*GeneratedSource, error) bool) {
		for gc, err := range GenerateContracts(cfg) {
			if err != nil {
				yield(nil, err)
				return
			}
			src, err := Print(gc)
			if !yield(src, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains a sequence, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
