package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/clevercloud-community/clevercloud-go/pkg/clevercloud"
	"github.com/expr-lang/expr"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrFilterNotBoolean    = errors.New("filter expression must evaluate to a boolean")
	ErrOrganizationMissing = errors.New("organisation is required (use --org or set 'organisation' in the config)")
)

// zerologAdapter exposes a zerolog logger through the ccapi.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func newLogger() ccapi.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// CreateClient builds an API client from the CLI configuration.
func CreateClient(ctx context.Context) (ccapi.Client, error) {
	config := &ccapi.Config{
		Endpoint:       viper.GetString("endpoint"),
		ConsumerKey:    viper.GetString("consumer-key"),
		ConsumerSecret: viper.GetString("consumer-secret"),
		Token:          viper.GetString("token"),
		Secret:         viper.GetString("secret"),
		Debug:          viper.GetBool("verbose"),
		Logger:         newLogger(),
		UserAgent:      "clever-cli",
	}

	if cacheType := viper.GetString("cache.type"); cacheType != "" {
		config.Cache = &ccapi.CacheConfig{
			Type:    ccapi.CacheType(cacheType),
			TTL:     viper.GetDuration("cache.ttl"),
			MaxSize: viper.GetInt("cache.max-size"),
		}

		if config.Cache.Type == ccapi.CacheTypeNATS {
			config.Cache.NATS = &ccapi.NATSKVConfig{
				URL:    viper.GetString("cache.nats.url"),
				Bucket: viper.GetString("cache.nats.bucket"),
			}
		}
	}

	client, err := clevercloud.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// resolveOrg returns the organisation from the flag or the configuration.
func resolveOrg(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if org := viper.GetString("organisation"); org != "" {
		return org, nil
	}

	return "", ErrOrganizationMissing
}

// filterItems keeps the items for which the expression evaluates to true.
// Each item is exposed to the expression as its JSON representation.
func filterItems[T any](items []T, expression string) ([]T, error) {
	if expression == "" {
		return items, nil
	}

	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression: %w", err)
	}

	kept := make([]T, 0, len(items))

	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encoding item for filtering: %w", err)
		}

		var env map[string]interface{}

		err = json.Unmarshal(data, &env)
		if err != nil {
			return nil, fmt.Errorf("decoding item for filtering: %w", err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter expression: %w", err)
		}

		keep, ok := result.(bool)
		if !ok {
			return nil, ErrFilterNotBoolean
		}

		if keep {
			kept = append(kept, item)
		}
	}

	return kept, nil
}

// renderStructured writes the value as JSON or YAML and reports whether it
// handled the configured output format. Table rendering stays with the
// caller.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(value)
		if err != nil {
			return true, fmt.Errorf("encoding to JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(value)
		if err != nil {
			return true, fmt.Errorf("encoding to YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// stringOrDefault dereferences an optional string.
func stringOrDefault(value *string) string {
	if value == nil {
		return NotAvailable
	}

	return *value
}
