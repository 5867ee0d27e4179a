package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/codec"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// printRecords writes records as a catalog document.
func printRecords(cmd *cobra.Command, records []*types.Record) error {
	data, err := codec.Encode(records)
	if err != nil {
		return sysError("encode records: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printRecord writes a single record as one catalog element.
func printRecord(cmd *cobra.Command, r *types.Record) error {
	data, err := codec.EncodeRecord(r)
	if err != nil {
		return sysError("encode record: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printLine writes the numbered one-line summary used by list and search.
func printLine(cmd *cobra.Command, index int, r *types.Record) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", index+1, r.Describe())
}
