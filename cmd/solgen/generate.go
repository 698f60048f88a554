package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/solgen/compiler/gen"
	"github.com/syssam/solgen/corpus"
)

type generateFlags struct {
	config  string
	out     string
	subset  string
	kinds   []string
	where   string
	workers int
	index   string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write every contract of the option space to a directory",
		Long: `generate builds every combination of the selected kinds' option spaces,
skips the combinations a builder rejects, and writes one <id>.sol file per
contract plus a manifest.yaml. With --index the records are also stored in
a SQL corpus index.`,
		Example: `  solgen generate --out corpus
  solgen generate --out corpus --subset minimal-cover --kind ERC20 --kind ERC721
  solgen generate --out corpus --where 'upgradeable == "uups" && burnable' --index sqlite:corpus.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.buildConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, f.index)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Generator config file (solgen.yaml)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output directory")
	cmd.Flags().StringVar(&f.subset, "subset", string(gen.SubsetAll), "Subset to write: all or minimal-cover")
	cmd.Flags().StringArrayVarP(&f.kinds, "kind", "k", nil, "Restrict to a kind (repeatable)")
	cmd.Flags().StringVar(&f.where, "where", "", "Filter expression over the options")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent print and write tasks (default GOMAXPROCS)")
	cmd.Flags().StringVar(&f.index, "index", "", "Corpus index as dialect:dsn, e.g. sqlite:corpus.db")
	return cmd
}

// buildConfig applies the changed flags on top of the config file, if any.
func (f *generateFlags) buildConfig(cmd *cobra.Command) (*gen.Config, error) {
	opts := []gen.Option{gen.WithLogger(logger)}
	flags := cmd.Flags()
	if flags.Changed("out") {
		opts = append(opts, gen.WithTarget(f.out))
	}
	if flags.Changed("subset") {
		opts = append(opts, gen.WithSubset(gen.Subset(f.subset)))
	}
	if len(f.kinds) > 0 {
		kinds := make([]gen.Kind, 0, len(f.kinds))
		for _, s := range f.kinds {
			k, err := gen.ParseKind(s)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
		opts = append(opts, gen.WithKinds(kinds...))
	}
	if flags.Changed("where") {
		opts = append(opts, gen.WithWhere(f.where))
	}
	if flags.Changed("workers") {
		opts = append(opts, gen.WithWorkers(f.workers))
	}
	if f.config != "" {
		return gen.LoadConfig(f.config, opts...)
	}
	return gen.NewConfig(opts...)
}

func runGenerate(ctx context.Context, cfg *gen.Config, index string) error {
	start := time.Now()
	w := gen.NewWriter(cfg)
	if index != "" {
		store, err := openIndex(ctx, index)
		if err != nil {
			return err
		}
		defer store.Close()
		run := w.RunID().String()
		w.OnWrite(func(ctx context.Context, src *gen.GeneratedSource) error {
			r, err := corpus.FromSource(run, src)
			if err != nil {
				return err
			}
			return store.Put(ctx, r)
		})
	}
	if err := w.WriteAll(ctx, gen.GenerateContracts(cfg)); err != nil {
		return err
	}
	m := w.Metrics()
	logger.Info("generation complete",
		zap.String("run", w.RunID().String()),
		zap.Int("files", m.FilesWritten),
		zap.Duration("print", time.Duration(m.PrintTime)),
		zap.Duration("write", time.Duration(m.WriteTime)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func openIndex(ctx context.Context, index string) (*corpus.Store, error) {
	dialect, dsn, err := corpus.ParseDSN(index)
	if err != nil {
		return nil, err
	}
	store, err := corpus.Open(dialect, dsn, corpus.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrate index: %w", err)
	}
	return store, nil
}
