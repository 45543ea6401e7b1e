package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// ConfigProviderClient implements ccapi.ConfigProviderClient.
type ConfigProviderClient struct {
	httpClient *http.Client
}

// NewConfigProviderClient creates a new config-provider client.
func NewConfigProviderClient(httpClient *http.Client) *ConfigProviderClient {
	return &ConfigProviderClient{
		httpClient: httpClient,
	}
}

func configProviderPath(addonID string) string {
	return "/v4/addon-providers/config-provider/addons/" + addonID + "/env"
}

// Env implements ccapi.ConfigProviderClient.Env.
func (c *ConfigProviderClient) Env(ctx context.Context, addonID string) ([]ccapi.Variable, error) {
	resp, err := c.httpClient.Get(ctx, configProviderPath(addonID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting config-provider environment: %w", err)
	}

	var variables []ccapi.Variable

	err = json.Unmarshal(resp.Body, &variables)
	if err != nil {
		return nil, fmt.Errorf("parsing config-provider environment: %w", err)
	}

	return variables, nil
}

// SetEnv implements ccapi.ConfigProviderClient.SetEnv. It replaces the whole
// environment and returns the stored variables.
func (c *ConfigProviderClient) SetEnv(ctx context.Context, addonID string, variables []ccapi.Variable) ([]ccapi.Variable, error) {
	resp, err := c.httpClient.Put(ctx, configProviderPath(addonID), variables)
	if err != nil {
		return nil, fmt.Errorf("updating config-provider environment: %w", err)
	}

	var updated []ccapi.Variable

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing config-provider environment: %w", err)
	}

	return updated, nil
}

// Insert implements ccapi.ConfigProviderClient.Insert.
func (c *ConfigProviderClient) Insert(ctx context.Context, addonID string, variable ccapi.Variable) ([]ccapi.Variable, error) {
	return c.BulkInsert(ctx, addonID, []ccapi.Variable{variable})
}

// BulkInsert implements ccapi.ConfigProviderClient.BulkInsert. The endpoint
// only supports full replacement, so the current environment is read, merged
// with the new variables and written back.
func (c *ConfigProviderClient) BulkInsert(ctx context.Context, addonID string, variables []ccapi.Variable) ([]ccapi.Variable, error) {
	current, err := c.Env(ctx, addonID)
	if err != nil {
		return nil, err
	}

	env := ccapi.VariablesToMap(current)
	for _, variable := range variables {
		env[variable.Name] = variable.Value
	}

	return c.SetEnv(ctx, addonID, ccapi.MapToVariables(env))
}

// Remove implements ccapi.ConfigProviderClient.Remove.
func (c *ConfigProviderClient) Remove(ctx context.Context, addonID, name string) ([]ccapi.Variable, error) {
	return c.BulkRemove(ctx, addonID, []string{name})
}

// BulkRemove implements ccapi.ConfigProviderClient.BulkRemove. Names absent
// from the environment are ignored.
func (c *ConfigProviderClient) BulkRemove(ctx context.Context, addonID string, names []string) ([]ccapi.Variable, error) {
	current, err := c.Env(ctx, addonID)
	if err != nil {
		return nil, err
	}

	env := ccapi.VariablesToMap(current)
	for _, name := range names {
		delete(env, name)
	}

	return c.SetEnv(ctx, addonID, ccapi.MapToVariables(env))
}
