package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/solgen/bundle"
	"github.com/syssam/solgen/catalog"
)

func newBundleCmd() *cobra.Command {
	var file, catalogDir, out string
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Write a contract with every vendored file it imports",
		Long: `bundle prints the contract of an options document with its imports
rewritten to relative paths, and copies the transitive closure of those
imports out of a catalog directory. The catalog directory holds a
catalog.yaml manifest and the vendored sources at their import paths.`,
		Example: `  solgen bundle -f token.yaml --catalog vendor --out build/token`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContract(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cat, err := catalog.Load(os.DirFS(catalogDir))
			if err != nil {
				return err
			}
			b, err := bundle.New(c, cat)
			if err != nil {
				return err
			}
			if err := b.WriteDir(out); err != nil {
				return err
			}
			logger.Info("bundle written",
				zap.String("contract", c.Name),
				zap.String("dir", out),
				zap.Int("files", len(b.Files)),
			)
			for _, p := range b.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Options document (- for stdin)")
	cmd.Flags().StringVar(&catalogDir, "catalog", "", "Catalog directory")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
