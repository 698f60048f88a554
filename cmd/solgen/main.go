// Command solgen composes, prints and bundles token contracts and generates
// contract corpora for compiler testing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "solgen",
		Short: "Compose Solidity token contracts from options",
		Long: `solgen composes OpenZeppelin-based token contracts (SmartAsset, ERC20,
ERC721, ERC1155, Governor, Custom) from YAML options documents.

It prints single contracts, bundles them with their vendored imports, and
generates the whole option space (or its minimal cover) as a test corpus.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newPrintCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCountCmd())
	root.AddCommand(newBundleCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
