package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFunctionsCommand creates the functions command group.
func NewFunctionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "functions",
		Aliases: []string{"function", "fn"},
		Short:   "Manage functions",
		Long:    "List, create and deploy the WebAssembly functions of an organisation",
	}

	cmd.AddCommand(newFunctionsListCommand())
	cmd.AddCommand(newFunctionsCreateCommand())
	cmd.AddCommand(newFunctionsDeleteCommand())
	cmd.AddCommand(newFunctionsDeployCommand())
	cmd.AddCommand(newFunctionsExecuteCommand())
	cmd.AddCommand(newFunctionsDeploymentsCommand())

	return cmd
}

func newFunctionsListCommand() *cobra.Command {
	var (
		org    string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctionsListCommand(org, filter)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&filter, "filter", "", "expression to filter results, e.g. 'maxInstances > 1'")

	return cmd
}

func runFunctionsListCommand(org, filter string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	functions, err := client.Functions().List(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list functions: %w", err)
	}

	functions, err = filterItems(functions, filter)
	if err != nil {
		return err
	}

	handled, err := renderStructured(functions)
	if handled {
		return err
	}

	if len(functions) == 0 {
		_, _ = os.Stdout.WriteString("No functions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Tag", "Updated")

	for _, function := range functions {
		_ = table.Append(function.ID, stringOrDefault(function.Name),
			stringOrDefault(function.Tag), function.UpdatedAt.Format(time.RFC3339))
	}

	_ = table.Render()

	return nil
}

func newFunctionsCreateCommand() *cobra.Command {
	var (
		org  string
		name string
		tag  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a function",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctionsCreateCommand(org, name, tag)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&name, "name", "", "function name")
	cmd.Flags().StringVar(&tag, "tag", "", "function tag")

	return cmd
}

func runFunctionsCreateCommand(org, name, tag string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	opts := ccapi.DefaultFunctionOptions()
	if name != "" {
		opts.Name = &name
	}

	if tag != "" {
		opts.Tag = &tag
	}

	function, err := client.Functions().Create(ctx, orgID, opts)
	if err != nil {
		return fmt.Errorf("failed to create function: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Function %s created\n", function.ID)

	return nil
}

func newFunctionsDeleteCommand() *cobra.Command {
	var (
		org   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete FUNCTION_ID",
		Short: "Delete a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete function %s without --force", args[0])
			}

			return runFunctionsDeleteCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runFunctionsDeleteCommand(org, functionID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	err = client.Functions().Delete(ctx, orgID, functionID)
	if err != nil {
		return fmt.Errorf("failed to delete function: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Function %s deleted\n", functionID)

	return nil
}

func newFunctionsDeployCommand() *cobra.Command {
	var (
		org      string
		platform string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "deploy FUNCTION_ID WASM_FILE",
		Short: "Deploy a WebAssembly artifact",
		Long: `Deploy a WebAssembly artifact to a function.

The deployment is created, the artifact is uploaded to the pre-signed
URL and the deployment is triggered.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctionsDeployCommand(org, args[0], args[1], platform, name)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&platform, "platform", "rust", "build platform (rust, javascript, tiny_go, assemblyscript)")
	cmd.Flags().StringVar(&name, "name", "", "deployment name")

	return cmd
}

func runFunctionsDeployCommand(org, functionID, wasmFile, platform, name string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	parsedPlatform, err := ccapi.ParsePlatform(platform)
	if err != nil {
		return err
	}

	wasm, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("reading artifact: %w", err)
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	opts := &ccapi.DeploymentOptions{Platform: parsedPlatform}
	if name != "" {
		opts.Name = &name
	}

	creation, err := client.Functions().CreateDeployment(ctx, orgID, functionID, opts)
	if err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Uploading %s (%d bytes)...\n", wasmFile, len(wasm))

	err = client.Functions().Upload(ctx, creation.UploadURL, wasm)
	if err != nil {
		return err
	}

	err = client.Functions().TriggerDeployment(ctx, orgID, functionID, creation.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deployment %s triggered\n", creation.ID)

	return nil
}

func newFunctionsExecuteCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:     "execute FUNCTION_ID",
		Aliases: []string{"exec"},
		Short:   "Execute a function",
		Long:    "Invoke the endpoint of the most recent ready deployment of a function",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctionsExecuteCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runFunctionsExecuteCommand(org, functionID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	deployments, err := client.Functions().ListDeployments(ctx, orgID, functionID)
	if err != nil {
		return fmt.Errorf("failed to list deployments: %w", err)
	}

	ready := make([]ccapi.Deployment, 0, len(deployments))

	for _, deployment := range deployments {
		if deployment.Status == ccapi.DeploymentReady && deployment.URL != nil {
			ready = append(ready, deployment)
		}
	}

	if len(ready) == 0 {
		return fmt.Errorf("function %s has no ready deployment to execute", functionID)
	}

	sort.Slice(ready, func(i, j int) bool {
		return ready[i].CreatedAt.After(ready[j].CreatedAt)
	})

	result, err := client.Functions().Execute(ctx, *ready[0].URL)
	if err != nil {
		return fmt.Errorf("failed to execute function: %w", err)
	}

	handled, err := renderStructured(result)
	if handled {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("function execution failed: %s", *result.Error)
	}

	if result.Stdout != "" {
		_, _ = os.Stdout.WriteString(result.Stdout)
	}

	if result.Stderr != "" {
		_, _ = os.Stderr.WriteString(result.Stderr)
	}

	return nil
}

func newFunctionsDeploymentsCommand() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "deployments FUNCTION_ID",
		Short: "List the deployments of a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctionsDeploymentsCommand(org, args[0])
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")

	return cmd
}

func runFunctionsDeploymentsCommand(org, functionID string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	deployments, err := client.Functions().ListDeployments(ctx, orgID, functionID)
	if err != nil {
		return fmt.Errorf("failed to list deployments: %w", err)
	}

	handled, err := renderStructured(deployments)
	if handled {
		return err
	}

	if len(deployments) == 0 {
		_, _ = os.Stdout.WriteString("No deployments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Platform", "Status", "Created")

	for _, deployment := range deployments {
		_ = table.Append(deployment.ID, deployment.Platform.String(),
			deployment.Status.String(), deployment.CreatedAt.Format(time.RFC3339))
	}

	_ = table.Render()

	return nil
}
