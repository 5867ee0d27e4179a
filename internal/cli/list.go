package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if a.flags.jsonMode {
				return printRecords(cmd, c.Records())
			}
			for i, r := range c.Records() {
				printLine(cmd, i, r)
			}
			return nil
		},
	}
}
