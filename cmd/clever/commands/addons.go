package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/clevercloud-community/clevercloud-go/internal/constants"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAddonsCommand creates the addons command group.
func NewAddonsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addons",
		Aliases: []string{"addon"},
		Short:   "Manage addons",
		Long:    "List, inspect, create and delete the addons of an organisation",
	}

	cmd.AddCommand(newAddonsListCommand())
	cmd.AddCommand(newAddonsGetCommand())
	cmd.AddCommand(newAddonsCreateCommand())
	cmd.AddCommand(newAddonsDeleteCommand())
	cmd.AddCommand(newAddonsEnvCommand())

	return cmd
}

func newAddonsListCommand() *cobra.Command {
	var (
		org    string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List addons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddonsListCommand(org, filter)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'region == \"par\"'")

	return cmd
}

func runAddonsListCommand(org, filter string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	addons, err := client.Addons().List(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list addons: %w", err)
	}

	addons, err = filterItems(addons, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(addons)
	if handled {
		return err
	}

	if len(addons) == 0 {
		_, _ = os.Stdout.WriteString("No addons found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Provider", "Plan", "Region")

	for _, addon := range addons {
		_ = table.Append(addon.ID, stringOrDefault(addon.Name), addon.Provider.Name,
			addon.Plan.Slug, addon.Region)
	}

	_ = table.Render()

	return nil
}

func newAddonsGetCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "get ADDON_ID",
		Short: "Show an addon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddonsGetCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runAddonsGetCommand(org, addonID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	addon, err := client.Addons().Get(ctx, orgID, addonID)
	if err != nil {
		return fmt.Errorf("failed to get addon: %w", err)
	}

	handled, err := renderStructured(addon)
	if handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("ID", addon.ID)
	_ = table.Append("Real ID", addon.RealID)
	_ = table.Append("Name", stringOrDefault(addon.Name))
	_ = table.Append("Provider", addon.Provider.Name)
	_ = table.Append("Plan", addon.Plan.Slug)
	_ = table.Append("Region", addon.Region)
	_ = table.Render()

	return nil
}

func newAddonsCreateCommand() *cobra.Command {
	var (
		org     string
		region  string
		plan    string
		version string
	)

	cmd := &cobra.Command{
		Use:   "create PROVIDER NAME",
		Short: "Create an addon",
		Long: `Create an addon from a provider and a plan.

The plan is matched case-insensitively against the provider's plan
identifiers, slugs and names.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddonsCreateCommand(org, args[0], args[1], region, plan, version)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&region, "region", "par", "deployment region")
	cmd.Flags().StringVar(&plan, "plan", "", "plan identifier, slug or name")
	cmd.Flags().StringVar(&version, "version", "", "engine version, provider default when empty")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runAddonsCreateCommand(org, provider, name, region, plan, version string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	providerID, err := ccapi.ParseAddonProviderID(provider)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	matched, err := client.AddonProviders().FindPlan(ctx, providerID, orgID, plan)
	if err != nil {
		return err
	}

	if matched == nil {
		return fmt.Errorf("provider '%s' has no plans", providerID)
	}

	opts := &ccapi.AddonCreateOptions{
		Name:       name,
		Region:     region,
		ProviderID: providerID,
		Plan:       matched.ID,
	}

	if version != "" {
		opts.Options = &ccapi.AddonOptions{Version: version}
	}

	addon, err := client.Addons().Create(ctx, orgID, opts)
	if err != nil {
		return fmt.Errorf("failed to create addon: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Addon %s created (%s)\n", stringOrDefault(addon.Name), addon.ID)

	return nil
}

func newAddonsDeleteCommand() *cobra.Command {
	var (
		org   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete ADDON_ID",
		Short: "Delete an addon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete addon %s without --force", args[0])
			}

			return runAddonsDeleteCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runAddonsDeleteCommand(org, addonID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	err = client.Addons().Delete(ctx, orgID, addonID)
	if err != nil {
		return fmt.Errorf("failed to delete addon: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Addon %s deleted\n", addonID)

	return nil
}

func newAddonsEnvCommand() *cobra.Command {
	var (
		org string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "env [ADDON_ID]",
		Short: "Show addon environment variables",
		Long: `Show the environment variables exposed by an addon.

With --all, the environments of every addon of the organisation are
fetched concurrently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return runAddonsEnvAllCommand(org)
			}

			if len(args) != 1 {
				return cmd.Usage()
			}

			return runAddonsEnvCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().BoolVar(&all, "all", false, "fetch the environment of every addon")

	return cmd
}

func runAddonsEnvCommand(org, addonID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	env, err := client.Addons().Env(ctx, orgID, addonID)
	if err != nil {
		return fmt.Errorf("failed to get addon environment: %w", err)
	}

	handled, err := renderStructured(env)
	if handled {
		return err
	}

	printEnvTable(env)

	return nil
}

func runAddonsEnvAllCommand(org string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	addons, err := client.Addons().List(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list addons: %w", err)
	}

	var (
		mu   sync.Mutex
		envs = make(map[string]map[string]string, len(addons))
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for _, addon := range addons {
		group.Go(func() error {
			env, err := client.Addons().Env(groupCtx, orgID, addon.ID)
			if err != nil {
				return fmt.Errorf("failed to get environment of %s: %w", addon.ID, err)
			}

			mu.Lock()
			envs[addon.ID] = env
			mu.Unlock()

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return err
	}

	handled, err := renderStructured(envs)
	if handled {
		return err
	}

	ids := make([]string, 0, len(envs))
	for id := range envs {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintf(os.Stdout, "%s:\n", id)
		printEnvTable(envs[id])
	}

	return nil
}

func printEnvTable(env map[string]string) {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}

	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Value")

	for _, name := range names {
		_ = table.Append(name, env[name])
	}

	_ = table.Render()
}
