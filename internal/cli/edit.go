package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <n> <field> <value>",
		Short: "Set one field of record n",
		Long:  "Set one field of record n. Persons have name, surname, birth, gender\nand number; organizations have name, address and number. Invalid values\nare stored as a placeholder and reported as a warning.",
		Args:  cobra.ExactArgs(3),
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

			field, value := args[1], args[2]
			if !r.SetField(field, value) {
				return userError("unknown field %q (valid: %s)", field, strings.Join(r.ListFields(), ", "))
			}
			if err := save(c); err != nil {
				return err
			}

			got, _ := r.GetField(field)
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s of %d to %s\n", field, idx+1, got)
			return nil
		},
	}
}
