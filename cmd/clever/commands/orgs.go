package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewOrgsCommand creates the organisations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organisations", "org"},
		Short:   "Manage organisations",
		Long:    "List and inspect the organisations the user belongs to",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organisations",
		Long:  "List all organisations the user belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'canPay == true'")

	return cmd
}

func runOrgsListCommand(filter string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	orgs, err := client.Organizations().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organisations: %w", err)
	}

	orgs, err = filterItems(orgs, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(orgs)
	if handled {
		return err
	}

	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organisations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "City", "Country")

	for _, org := range orgs {
		_ = table.Append(org.ID, org.Name, org.City, org.Country)
	}

	_ = table.Render()

	return nil
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Show an organisation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsGetCommand(args[0])
		},
	}
}

func runOrgsGetCommand(orgID string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	org, err := client.Organizations().Get(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to get organisation: %w", err)
	}

	handled, err := renderStructured(org)
	if handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("ID", org.ID)
	_ = table.Append("Name", org.Name)
	_ = table.Append("Description", org.Description)
	_ = table.Append("Billing email", org.BillingEmail)
	_ = table.Append("City", org.City)
	_ = table.Append("Country", org.Country)
	_ = table.Render()

	return nil
}
