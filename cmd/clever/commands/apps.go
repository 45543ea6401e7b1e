package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAppsCommand creates the applications command group.
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications", "app"},
		Short:   "Manage applications",
		Long:    "List, inspect, restart and stop the applications of an organisation",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())
	cmd.AddCommand(newAppsEnvCommand())
	cmd.AddCommand(newAppsRestartCommand())
	cmd.AddCommand(newAppsStopCommand())
	cmd.AddCommand(newAppsDeleteCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	var (
		org    string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsListCommand(org, filter)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'state == \"SHOULD_BE_UP\"'")

	return cmd
}

func runAppsListCommand(org, filter string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	apps, err := client.Applications().List(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	apps, err = filterItems(apps, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(apps)
	if handled {
		return err
	}

	if len(apps) == 0 {
		_, _ = os.Stdout.WriteString("No applications found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Zone", "State")

	for _, app := range apps {
		_ = table.Append(app.ID, app.Name, app.Instance.Type, app.Zone, app.State)
	}

	_ = table.Render()

	return nil
}

func newAppsGetCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "get APP_ID",
		Short: "Show an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsGetCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runAppsGetCommand(org, appID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	app, err := client.Applications().Get(ctx, orgID, appID)
	if err != nil {
		return fmt.Errorf("failed to get application: %w", err)
	}

	handled, err := renderStructured(app)
	if handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("ID", app.ID)
	_ = table.Append("Name", app.Name)
	_ = table.Append("Description", app.Description)
	_ = table.Append("Zone", app.Zone)
	_ = table.Append("Type", app.Instance.Type)
	_ = table.Append("State", app.State)
	_ = table.Append("Flavor", fmt.Sprintf("%s - %s", app.Instance.MinFlavor.Name, app.Instance.MaxFlavor.Name))
	_ = table.Append("Instances", fmt.Sprintf("%d - %d", app.Instance.MinInstances, app.Instance.MaxInstances))
	_ = table.Render()

	return nil
}

func newAppsEnvCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "env APP_ID",
		Short: "Show an application's environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsEnvCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runAppsEnvCommand(org, appID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	env, err := client.Applications().Env(ctx, orgID, appID)
	if err != nil {
		return fmt.Errorf("failed to get application environment: %w", err)
	}

	handled, err := renderStructured(env)
	if handled {
		return err
	}

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

	return nil
}

func newAppsRestartCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "restart APP_ID",
		Short: "Restart an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsActionCommand(org, args[0], "restart")
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func newAppsStopCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "stop APP_ID",
		Short: "Stop an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsActionCommand(org, args[0], "stop")
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runAppsActionCommand(org, appID, action string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	var done string

	switch action {
	case "restart":
		err = client.Applications().Restart(ctx, orgID, appID)
		done = "restarted"
	case "stop":
		err = client.Applications().Undeploy(ctx, orgID, appID)
		done = "stopped"
	}

	if err != nil {
		return fmt.Errorf("failed to %s application: %w", action, err)
	}

	fmt.Fprintf(os.Stdout, "Application %s %s\n", appID, done)

	return nil
}

func newAppsDeleteCommand() *cobra.Command {
	var (
		org   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete APP_ID",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete application %s without --force", args[0])
			}

			return runAppsDeleteCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runAppsDeleteCommand(org, appID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	err = client.Applications().Delete(ctx, orgID, appID)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Application %s deleted\n", appID)

	return nil
}
