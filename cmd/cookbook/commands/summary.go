package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/ui/render"
)

func (c *CLI) newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary NAME",
		Short: "Print the flattened ingredients and total cook time of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.Prepare(options(cmd)); err != nil {
				return err
			}

			summary, err := c.app.Summarize(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return render.Summary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every recipe and report the ones that cannot be summarised",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.app.Prepare(options(cmd)); err != nil {
				return err
			}

			results, checkErr := c.app.Check(cmd.Context())
			if err := render.CheckReport(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return checkErr
		},
	}
}
