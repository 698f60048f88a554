// Package gen generates contracts in bulk from the option spaces of the
// contract kinds.
//
// # Pipeline
//
//	Blueprint (per kind)
//	        ↓
//	   GenerateOptions (lazy cartesian product, optional Filter)
//	        ↓
//	   Generate (kind builder, digest id)
//	        ↓
//	   GenerateContracts (all, or minimal cover per upgradeability)
//	        ↓
//	   Writer (<id>.sol files + manifest.yaml)
//
// # Options
//
// Options is a closed union with one variant per kind. Documents carry a
// kind discriminator:
//
//	o, err := gen.ParseOptions([]byte("kind: ERC20\nmintable: true\n"))
//	gc, err := gen.Generate(o)
//
// # Error Handling
//
// Combinations a kind builder does not offer fail with *solgen.OptionsError
// and are skipped by GenerateContracts. Every other failure is wrapped in a
// GenerationError naming the phase, kind and id, with the options document
// attached:
//
//	for gc, err := range gen.GenerateContracts(cfg) {
//	    if gen.IsGenerationError(err) {
//	        // Defect in a kind builder or printer
//	    }
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithKinds(gen.KindERC20, gen.KindERC721),
//	    gen.WithSubset(gen.SubsetMinimalCover),
//	    gen.WithWhere(`access != "roles"`),
//	    gen.WithTarget("./fixtures"),
//	)
//	err = gen.NewWriter(cfg).WriteAll(ctx, gen.GenerateContracts(cfg))
//
// or loaded from a solgen.yaml file with LoadConfig.
package gen
