package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewProvidersCommand creates the addon providers command group.
func NewProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "Browse the addon provider catalog",
		Long:    "List addon providers, their plans and their shared clusters",
	}

	cmd.AddCommand(newProvidersListCommand())
	cmd.AddCommand(newProvidersPlansCommand())
	cmd.AddCommand(newProvidersClustersCommand())

	return cmd
}

func newProvidersListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List addon providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvidersListCommand(filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'status == \"RELEASE\"'")

	return cmd
}

func runProvidersListCommand(filter string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	providers, err := client.AddonProviders().ListProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list addon providers: %w", err)
	}

	providers, err = filterItems(providers, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(providers)
	if handled {
		return err
	}

	if len(providers) == 0 {
		_, _ = os.Stdout.WriteString("No addon providers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Regions")

	for _, provider := range providers {
		_ = table.Append(provider.ID, provider.Name, provider.Status,
			strings.Join(provider.Regions, ", "))
	}

	_ = table.Render()

	return nil
}

func newProvidersPlansCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "plans PROVIDER",
		Short: "List the plans of a provider",
		Long:  "List the plans of an addon provider, as available to the organisation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvidersPlansCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runProvidersPlansCommand(org, provider string) error {
	providerID, err := ccapi.ParseAddonProviderID(provider)
	if err != nil {
		return err
	}

	// Plans can be listed without an organisation; the catalog then returns
	// the public ones.
	orgID, _ := resolveOrg(org)

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	info, err := client.AddonProviders().ListPlans(ctx, providerID, orgID)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	handled, err := renderStructured(info.Plans)
	if handled {
		return err
	}

	if len(info.Plans) == 0 {
		_, _ = os.Stdout.WriteString("No plans found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Slug", "Name", "Price", "Zones")

	for _, plan := range info.Plans {
		_ = table.Append(plan.Slug, plan.Name,
			strconv.FormatFloat(plan.Price, 'f', 2, 64),
			strings.Join(plan.Zones, ", "))
	}

	_ = table.Render()

	return nil
}

func newProvidersClustersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clusters PROVIDER",
		Short: "List the shared clusters of a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvidersClustersCommand(args[0])
		},
	}
}

func runProvidersClustersCommand(provider string) error {
	providerID, err := ccapi.ParseAddonProviderID(provider)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	clusters, err := client.AddonProviders().GetClusters(ctx, providerID)
	if err != nil {
		return fmt.Errorf("failed to get clusters: %w", err)
	}

	handled, err := renderStructured(clusters)
	if handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Label", "Zone", "Version")

	for _, cluster := range clusters.Clusters {
		_ = table.Append(cluster.ID, cluster.Label, cluster.Zone, cluster.Version)
	}

	_ = table.Render()

	return nil
}
