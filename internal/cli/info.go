package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <n>",
		Short: "Show every field of record n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			idx, err := parseIndex(args[0], c)
			if err != nil {
				return err
			}
			r, err := c.Get(idx)
			if err != nil {
				return userError("%w", err)
			}

			if a.flags.jsonMode {
				return printRecord(cmd, r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.FullInfo())
			return nil
		},
	}
}
