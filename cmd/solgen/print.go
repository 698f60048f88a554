package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/solgen/compiler/contract"
	"github.com/syssam/solgen/compiler/gen"
	"github.com/syssam/solgen/compiler/printer"
)

func newPrintCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the contract described by an options document",
		Example: `  solgen print -f token.yaml
  echo 'kind: erc20' | solgen print -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := render(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), src)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Options document (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadContract reads an options document and builds its contract.
func loadContract(path string, stdin io.Reader) (*contract.Contract, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	o, err := gen.ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("options parsed", zap.String("file", path), zap.String("kind", string(o.Kind())))
	return gen.Build(o)
}

// render builds and prints the contract of an options document.
func render(path string, stdin io.Reader, opts ...printer.Option) (string, error) {
	c, err := loadContract(path, stdin)
	if err != nil {
		return "", err
	}
	return printer.Print(c, opts...)
}
