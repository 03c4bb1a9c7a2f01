package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hightemp/searchpresets/internal/output"
)

func newResolveCmd(opts *options) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve CODE",
		Short: "Show the engine list a country resolves to",
		Long: `Resolves a country code the way clients read the document: the country is
looked up in the mapping (unmapped countries use the default list code), then
the engine list with the resolved code is chosen, falling back to the default
list.

Output is the country, resolved code and list code, followed by one engine per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := args[0]

			result, err := opts.extract(cmd)
			if err != nil {
				return err
			}

			resolved, list, ok := result.Resolve(country, opts.cfg.DefaultCode)
			if !ok {
				return fmt.Errorf("%w: no engine list for %s (resolved to %s, default %s)",
					errNotFound, country, resolved, opts.cfg.DefaultCode)
			}

			opts.logger.Debug("Resolved country",
				zap.String("country", country),
				zap.String("resolved", resolved),
				zap.String("list", list.Code))

			res := &output.ResolveResult{
				Country:  country,
				Resolved: resolved,
				List:     list.Code,
				Engines:  list.Engines,
			}

			if jsonOutput {
				data, err := res.FormatJSON(opts.cfg.JSONIndent())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.FormatText())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
