package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find records whose fields contain query",
		Long:  "Find records whose full information contains query, ignoring case.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			query := strings.ToLower(args[0])
			matches := c.FindMatching(func(r *types.Record) bool {
				return strings.Contains(strings.ToLower(r.FullInfo()), query)
			})

			if a.flags.jsonMode {
				found := make([]*types.Record, 0, len(matches))
				for _, m := range matches {
					found = append(found, m.Record)
				}
				return printRecords(cmd, found)
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d results:\n", len(matches))
			for _, m := range matches {
				printLine(cmd, m.Index, m.Record)
			}
			return nil
		},
	}
}
