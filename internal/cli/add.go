package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/catalog"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person or an organization",
	}
	cmd.AddCommand(newAddPersonCmd(a))
	cmd.AddCommand(newAddOrgCmd(a))
	return cmd
}

func newAddPersonCmd(a *app) *cobra.Command {
	var in types.PersonFields
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Add a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addRecord(cmd, func(c *catalog.Catalog) *types.Record {
				return types.NewPerson(in, c.Diagnostics())
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "first name")
	cmd.Flags().StringVar(&in.Surname, "surname", "", "surname")
	cmd.Flags().StringVar(&in.BirthDate, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "gender ("+strings.Join(types.Genders(), " or ")+")")
	cmd.Flags().StringVar(&in.PhoneNumber, "number", "", "phone number")
	return cmd
}

func newAddOrgCmd(a *app) *cobra.Command {
	var in types.OrganizationFields
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"organization"},
		Short:   "Add an organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addRecord(cmd, func(c *catalog.Catalog) *types.Record {
				return types.NewOrganization(in, c.Diagnostics())
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "organization name")
	cmd.Flags().StringVar(&in.Address, "address", "", "address")
	cmd.Flags().StringVar(&in.PhoneNumber, "number", "", "phone number")
	return cmd
}

// addRecord builds a record with the catalog's diagnostics attached, appends
// it and saves.
func (a *app) addRecord(cmd *cobra.Command, build func(*catalog.Catalog) *types.Record) error {
	c, err := a.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	r := build(c)
	if err := c.Append(r); err != nil {
		return sysError("append record: %w", err)
	}
	if err := save(c); err != nil {
		return err
	}

	if a.flags.jsonMode {
		return printRecord(cmd, r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d. %s\n", c.Size(), r.Describe())
	return nil
}
