package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/searchpresets/internal/output"
)

func newMappingCmd(opts *options) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Print the country fallback mapping",
		Long: `Prints the final country mapping, one country per line:

  CODE<TAB>NAME<TAB>TARGET<TAB>TARGET_NAME

Unknown names are shown as "-". With --json, prints the mapping object only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.extract(cmd)
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := output.FormatMappingJSON(result.CountryMapping, opts.cfg.JSONIndent())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			rows := output.MappingRows(result.CountryMapping)
			if len(rows) == 0 {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatMappingText(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
