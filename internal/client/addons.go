package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// AddonsClient implements ccapi.AddonsClient.
type AddonsClient struct {
	httpClient *http.Client
}

// NewAddonsClient creates a new addons client.
func NewAddonsClient(httpClient *http.Client) *AddonsClient {
	return &AddonsClient{
		httpClient: httpClient,
	}
}

func addonsPath(orgID string) string {
	return "/v2/organisations/" + orgID + "/addons"
}

// List implements ccapi.AddonsClient.List.
func (c *AddonsClient) List(ctx context.Context, orgID string) ([]ccapi.Addon, error) {
	resp, err := c.httpClient.Get(ctx, addonsPath(orgID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing addons: %w", err)
	}

	var addons []ccapi.Addon

	err = json.Unmarshal(resp.Body, &addons)
	if err != nil {
		return nil, fmt.Errorf("parsing addons: %w", err)
	}

	return addons, nil
}

// Get implements ccapi.AddonsClient.Get.
func (c *AddonsClient) Get(ctx context.Context, orgID, addonID string) (*ccapi.Addon, error) {
	path := addonsPath(orgID) + "/" + addonID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon: %w", err)
	}

	var addon ccapi.Addon

	err = json.Unmarshal(resp.Body, &addon)
	if err != nil {
		return nil, fmt.Errorf("parsing addon: %w", err)
	}

	return &addon, nil
}

// Create implements ccapi.AddonsClient.Create.
func (c *AddonsClient) Create(ctx context.Context, orgID string, opts *ccapi.AddonCreateOptions) (*ccapi.Addon, error) {
	resp, err := c.httpClient.Post(ctx, addonsPath(orgID), opts)
	if err != nil {
		return nil, fmt.Errorf("creating addon: %w", err)
	}

	var addon ccapi.Addon

	err = json.Unmarshal(resp.Body, &addon)
	if err != nil {
		return nil, fmt.Errorf("parsing addon: %w", err)
	}

	return &addon, nil
}

// Delete implements ccapi.AddonsClient.Delete.
func (c *AddonsClient) Delete(ctx context.Context, orgID, addonID string) error {
	path := addonsPath(orgID) + "/" + addonID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting addon: %w", err)
	}

	return nil
}

// Env implements ccapi.AddonsClient.Env.
func (c *AddonsClient) Env(ctx context.Context, orgID, addonID string) (map[string]string, error) {
	path := addonsPath(orgID) + "/" + addonID + "/env"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon environment: %w", err)
	}

	var variables []ccapi.Variable

	err = json.Unmarshal(resp.Body, &variables)
	if err != nil {
		return nil, fmt.Errorf("parsing addon environment: %w", err)
	}

	return ccapi.VariablesToMap(variables), nil
}
