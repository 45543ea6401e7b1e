package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/clevercloud-community/clevercloud-go/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long: `Prompt for the OAuth1 credentials and store them in the config file.

The consumer key/secret identify the application and the token/secret
identify the user. All four can be created from the Clever Cloud console.`,
		RunE: runLoginCommand,
	}
}

func runLoginCommand(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	consumerKey, err := promptLine(reader, "Consumer key: ")
	if err != nil {
		return err
	}

	consumerSecret, err := promptSecret("Consumer secret: ")
	if err != nil {
		return err
	}

	token, err := promptLine(reader, "Token: ")
	if err != nil {
		return err
	}

	secret, err := promptSecret("Secret: ")
	if err != nil {
		return err
	}

	credentials := map[string]string{
		"consumer-key":    consumerKey,
		"consumer-secret": consumerSecret,
		"token":           token,
		"secret":          secret,
	}

	path, err := writeCredentials(credentials)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Credentials written to %s\n", path)

	// Verify the credentials against the API
	for key, value := range credentials {
		viper.Set(key, value)
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	self, err := client.Self().Get(ctx)
	if err != nil {
		return fmt.Errorf("credentials stored but verification failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", self.Name, self.Email)

	return nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)

	value, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return strings.TrimSpace(string(value)), nil
}

func writeCredentials(credentials map[string]string) (string, error) {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".config", "clever-cloud")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return "", fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(configDir, "clever-go.yml")
	}

	// Merge with whatever is already in the config file
	settings := map[string]interface{}{}

	existing, err := os.ReadFile(path)
	if err == nil {
		_ = yaml.Unmarshal(existing, &settings)
	}

	for key, value := range credentials {
		settings[key] = value
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	return path, nil
}
