package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"almanac-resolver/internal/logging"
	"almanac-resolver/internal/pipeline"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "resolve FILE [ID...]",
		Short: "Trace identifiers through every category",
		Long:  `Print the value of each identifier in every category of the chain. Without IDs the seeds are traced.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := opts.build(args[0], from, to)
			if err != nil {
				return err
			}

			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}

			if len(ids) == 0 {
				ids = p.Seeds()
			}

			if len(ids) == 0 {
				return fmt.Errorf("nothing to resolve: %w", pipeline.ErrEmptyInput)
			}

			traces := make([][]pipeline.Step, len(ids))
			for i, id := range ids {
				traces[i] = p.Trace(id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTraces(cmd.OutOrStdout(), traces))

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting category (default: first source)")
	cmd.Flags().StringVar(&to, "to", "", "final category (default: last target)")

	return cmd
}

func parseIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))

	for _, a := range args {
		id, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q: must be an unsigned 64-bit integer", a)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// renderTraces lays traces out as one row per identifier and one column
// per category. Colour is dropped when w is not a terminal.
func renderTraces(w io.Writer, traces [][]pipeline.Step) string {
	renderer := lipgloss.NewRenderer(w)
	if !logging.IsTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	header := renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	last := cell.Foreground(lipgloss.Color("10"))

	headers := make([]string, len(traces[0]))
	for i, st := range traces[0] {
		headers[i] = st.Category
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == len(headers)-1:
				return last
			default:
				return cell
			}
		})

	for _, trace := range traces {
		row := make([]string, len(trace))
		for i, st := range trace {
			row[i] = strconv.FormatUint(st.Value, 10)
		}

		t.Row(row...)
	}

	return t.String()
}
