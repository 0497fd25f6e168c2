package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac-resolver/internal/pipeline"
)

func newLowestCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to string
		spans    bool
	)

	cmd := &cobra.Command{
		Use:   "lowest FILE",
		Short: "Print the lowest final identifier over the seeds",
		Long: `Resolve every seed through the chain and print the lowest result.

With --spans the seeds are read as (start, length) pairs and every identifier
of every span is considered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := opts.build(args[0], from, to)
			if err != nil {
				return err
			}

			var lowest uint64

			if spans {
				ss, err := pipeline.SpansFromPairs(p.Seeds())
				if err != nil {
					return fmt.Errorf("seed spans: %w", err)
				}

				lowest, err = p.MinimumOverSpans(ss)
				if err != nil {
					return fmt.Errorf("seed spans: %w", err)
				}
			} else {
				lowest, err = p.MinimumOverParallel(cmd.Context(), p.Seeds(), opts.cfg.Engine.Workers)
				if err != nil {
					return fmt.Errorf("seeds: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), lowest)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting category (default: first source)")
	cmd.Flags().StringVar(&to, "to", "", "final category (default: last target)")
	cmd.Flags().BoolVar(&spans, "spans", false, "read seeds as (start, length) pairs")

	return cmd
}
