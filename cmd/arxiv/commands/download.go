package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <id>...",
		Short: "Download the PDFs of the given papers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return c.app.Download(cmd.Context(), args, dir)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Directory to download PDFs into (defaults to the configured download directory)")

	return cmd
}
