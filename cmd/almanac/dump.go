package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"almanac-resolver/internal/rangemap"
)

// stageDump is the printable form of a built stage.
type stageDump struct {
	Name   string
	From   string
	To     string
	Policy string
	Rules  []rangemap.Rule
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Dump the parsed almanac and its built stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, p, err := opts.build(args[0], "", "")
			if err != nil {
				return err
			}

			stages := p.Stages()
			dumps := make([]stageDump, len(stages))

			for i, st := range stages {
				dumps[i] = stageDump{
					Name:   st.Name,
					From:   st.From,
					To:     st.To,
					Policy: st.Map.Policy().String(),
					Rules:  st.Map.Rules(),
				}
			}

			cfg := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
			}
			cfg.Fdump(cmd.OutOrStdout(), f, dumps)

			return nil
		},
	}
}
