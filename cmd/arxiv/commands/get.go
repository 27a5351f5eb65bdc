package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>...",
		Short: "Look up papers by their arXiv ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			papers, err := c.app.Get(cmd.Context(), args)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(cmd.OutOrStdout(), papers)
			}

			printPapers(cmd.OutOrStdout(), papers)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}
