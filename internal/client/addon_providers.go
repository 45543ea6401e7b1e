package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// AddonProvidersClient implements ccapi.AddonProvidersClient.
type AddonProvidersClient struct {
	httpClient *http.Client
}

// NewAddonProvidersClient creates a new addon providers client.
func NewAddonProvidersClient(httpClient *http.Client) *AddonProvidersClient {
	return &AddonProvidersClient{
		httpClient: httpClient,
	}
}

// ListProviders implements ccapi.AddonProvidersClient.ListProviders.
func (c *AddonProvidersClient) ListProviders(ctx context.Context) ([]ccapi.AddonProviderInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/products/addonproviders", nil)
	if err != nil {
		return nil, fmt.Errorf("listing addon providers: %w", err)
	}

	var providers []ccapi.AddonProviderInfo

	err = json.Unmarshal(resp.Body, &providers)
	if err != nil {
		return nil, fmt.Errorf("parsing addon providers: %w", err)
	}

	return providers, nil
}

// GetProvider implements ccapi.AddonProvidersClient.GetProvider.
func (c *AddonProvidersClient) GetProvider(ctx context.Context, providerID ccapi.AddonProviderID) (*ccapi.AddonProviderInfo, error) {
	path := "/v2/products/addonproviders/" + string(providerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon provider: %w", err)
	}

	var provider ccapi.AddonProviderInfo

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing addon provider: %w", err)
	}

	return &provider, nil
}

// ListPlans implements ccapi.AddonProvidersClient.ListPlans. Plans may differ
// per organisation, so the organisation is passed along.
func (c *AddonProvidersClient) ListPlans(ctx context.Context, providerID ccapi.AddonProviderID, orgID string) (*ccapi.AddonProviderInfo, error) {
	path := "/v2/products/addonproviders/" + string(providerID)

	query := url.Values{}
	if orgID != "" {
		query.Set("orga_id", orgID)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing addon provider plans: %w", err)
	}

	var provider ccapi.AddonProviderInfo

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing addon provider plans: %w", err)
	}

	return &provider, nil
}

// FindPlan implements ccapi.AddonProvidersClient.FindPlan. The pattern is
// matched case-insensitively against each plan's identifier, slug and name.
// A provider without plans yields no match and no error.
func (c *AddonProvidersClient) FindPlan(ctx context.Context, providerID ccapi.AddonProviderID, orgID, pattern string) (*ccapi.AddonPlan, error) {
	provider, err := c.ListPlans(ctx, providerID, orgID)
	if err != nil {
		return nil, err
	}

	if len(provider.Plans) == 0 {
		return nil, nil
	}

	available := make([]string, 0, len(provider.Plans))

	for i := range provider.Plans {
		plan := &provider.Plans[i]
		if strings.EqualFold(plan.ID, pattern) ||
			strings.EqualFold(plan.Slug, pattern) ||
			strings.EqualFold(plan.Name, pattern) {
			return plan, nil
		}

		available = append(available, plan.Slug)
	}

	return nil, fmt.Errorf("no plan of provider '%s' matches '%s', available plans are: %s",
		providerID, pattern, strings.Join(available, ", "))
}

// GetClusters implements ccapi.AddonProvidersClient.GetClusters.
func (c *AddonProvidersClient) GetClusters(ctx context.Context, providerID ccapi.AddonProviderID) (*ccapi.ProviderClusters, error) {
	path := "/v4/addon-providers/" + string(providerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting addon provider clusters: %w", err)
	}

	var clusters ccapi.ProviderClusters

	err = json.Unmarshal(resp.Body, &clusters)
	if err != nil {
		return nil, fmt.Errorf("parsing addon provider clusters: %w", err)
	}

	return &clusters, nil
}
