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

// NewSelfCommand creates the self command.
func NewSelfCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Show the current user",
		Long:  "Display the profile of the authenticated user",
		RunE:  runSelfCommand,
	}
}

func runSelfCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	self, err := client.Self().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	handled, err := renderStructured(self)
	if handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("ID", self.ID)
	_ = table.Append("Email", self.Email)
	_ = table.Append("Name", self.Name)
	_ = table.Append("Language", self.Lang)
	_ = table.Append("Email validated", strconv.FormatBool(self.EmailValidated))
	_ = table.Append("Created", time.UnixMilli(self.CreationDate).Format("2006-01-02"))
	_ = table.Render()

	return nil
}
