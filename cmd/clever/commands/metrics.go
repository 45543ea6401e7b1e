package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand() *cobra.Command {
	var (
		org      string
		interval string
	)

	cmd := &cobra.Command{
		Use:   "metrics RESOURCE_ID",
		Short: "Show metrics of a resource",
		Long:  "Fetch the metric series recorded for an application or addon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetricsCommand(org, args[0], interval)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "organisation identifier")
	cmd.Flags().StringVar(&interval, "interval", "", "time window, e.g. PT1H (API default when empty)")

	return cmd
}

func runMetricsCommand(org, resourceID, interval string) error {
	orgID, err := resolveOrg(org)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	metrics, err := client.Metrics().Get(ctx, orgID, resourceID, interval)
	if err != nil {
		return fmt.Errorf("failed to get metrics: %w", err)
	}

	handled, err := renderStructured(metrics)
	if handled {
		return err
	}

	if len(metrics) == 0 {
		_, _ = os.Stdout.WriteString("No metrics found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Unit", "Points", "Last value", "Last sample")

	for _, metric := range metrics {
		lastValue := NotAvailable
		lastSample := NotAvailable

		if len(metric.Points) > 0 {
			last := metric.Points[len(metric.Points)-1]
			lastValue = strconv.FormatFloat(last.Value, 'f', 2, 64)
			lastSample = time.UnixMilli(last.Timestamp).Format(time.RFC3339)
		}

		_ = table.Append(metric.Name, metric.Unit,
			strconv.Itoa(len(metric.Points)), lastValue, lastSample)
	}

	_ = table.Render()

	return nil
}
