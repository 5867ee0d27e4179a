package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// countJSON is the --json form of the count command.
type countJSON struct {
	Count int                `json:"count"`
	Kinds map[types.Kind]int `json:"kinds"`
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of records, in total and per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			kinds, err := c.CountByKind()
			if err != nil {
				return sysError("%w", err)
			}

			if a.flags.jsonMode {
				data, err := json.Marshal(countJSON{Count: c.Size(), Kinds: kinds})
				if err != nil {
					return sysError("encode count: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			parts := make([]string, 0, len(kinds))
			for _, k := range types.Kinds() {
				parts = append(parts, fmt.Sprintf("%d %s", kinds[k], k))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The catalog has %d records (%s).\n", c.Size(), strings.Join(parts, ", "))
			return nil
		},
	}
}
