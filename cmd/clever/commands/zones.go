package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List deployment zones",
		Long:  "List the zones applications and addons can be deployed to",
	}

	cmd.AddCommand(newZonesListCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	var (
		applicationsOnly bool
		hdsOnly          bool
		filter           string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonesListCommand(applicationsOnly, hdsOnly, filter)
		},
	}

	cmd.Flags().BoolVar(&applicationsOnly, "applications", false, "only zones open to applications")
	cmd.Flags().BoolVar(&hdsOnly, "hds", false, "only zones certified for health data hosting")
	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'countryCode == \"FR\"'")

	return cmd
}

func runZonesListCommand(applicationsOnly, hdsOnly bool, filter string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	var zones []ccapi.Zone

	switch {
	case applicationsOnly:
		zones, err = client.Zones().Applications(ctx)
	case hdsOnly:
		zones, err = client.Zones().HDS(ctx)
	default:
		zones, err = client.Zones().List(ctx)
	}

	if err != nil {
		return fmt.Errorf("failed to list zones: %w", err)
	}

	zones, err = filterItems(zones, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(zones)
	if handled {
		return err
	}

	if len(zones) == 0 {
		_, _ = os.Stdout.WriteString("No zones found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "City", "Country", "Tags")

	for _, zone := range zones {
		_ = table.Append(zone.Name, zone.City, zone.Country, strings.Join(zone.Tags, ", "))
	}

	_ = table.Render()

	return nil
}
