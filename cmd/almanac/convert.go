package main

import (
	"github.com/spf13/cobra"

	"almanac-resolver/internal/almanac"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var (
		toFormat string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert an almanac between text, YAML and TOML",
		Long: `Rewrite an almanac in another format. The target format comes from
--to-format, else from the extension of --output, else from output.format
in the configuration. Without --output the result is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := almanac.LoadFile(args[0])
			if err != nil {
				return err
			}

			var format almanac.Format

			switch {
			case cmd.Flags().Changed("to-format"):
				format, err = almanac.ParseFormat(toFormat)
			case output != "":
				format = almanac.DetectFormat(output)
			default:
				format, err = opts.cfg.OutputFormat()
			}

			if err != nil {
				return err
			}

			if output != "" {
				return almanac.WriteFile(f, output, format)
			}

			data, err := almanac.Marshal(f, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&toFormat, "to-format", "", "target format: text, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
