package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac-resolver/internal/almanac"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate an almanac",
		Long:  `Report errors, warnings and notes for an almanac. Exits non-zero when errors are found.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := almanac.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := almanac.Validate(f, opts.policy())
			out := cmd.OutOrStdout()

			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s), %d warning(s)",
					args[0], len(diags.Errors), len(diags.Warnings))
			}

			fmt.Fprintf(out, "%s: ok (%d section(s), %d seed(s), %d warning(s))\n",
				args[0], len(f.Sections), len(f.Seeds), len(diags.Warnings))

			return nil
		},
	}
}
