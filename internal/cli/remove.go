package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <n>",
		Aliases: []string{"rm"},
		Short:   "Remove record n",
		Args:    cobra.ExactArgs(1),
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
			if err := c.RemoveAt(idx); err != nil {
				return userError("%w", err)
			}
			if err := save(c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", r.Describe())
			return nil
		},
	}
}
