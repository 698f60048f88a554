package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/solgen/compiler/gen"
)

func newCountCmd() *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the combinations of each kind's option space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := gen.AllKinds
			if len(kinds) > 0 {
				selected = nil
				for _, s := range kinds {
					k, err := gen.ParseKind(s)
					if err != nil {
						return err
					}
					selected = append(selected, k)
				}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			for _, k := range selected {
				fmt.Fprintf(tw, "%s\t%d\t\n", k, gen.Count(k))
			}
			fmt.Fprintf(tw, "total\t%d\t\n", gen.Count(selected...))
			return tw.Flush()
		},
	}
	cmd.Flags().StringArrayVarP(&kinds, "kind", "k", nil, "Restrict to a kind (repeatable)")
	return cmd
}
