package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// ZonesClient implements ccapi.ZonesClient.
type ZonesClient struct {
	httpClient *http.Client
}

// NewZonesClient creates a new zones client.
func NewZonesClient(httpClient *http.Client) *ZonesClient {
	return &ZonesClient{
		httpClient: httpClient,
	}
}

// List implements ccapi.ZonesClient.List.
func (c *ZonesClient) List(ctx context.Context) ([]ccapi.Zone, error) {
	resp, err := c.httpClient.Get(ctx, "/v4/products/zones", nil)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	var zones []ccapi.Zone

	err = json.Unmarshal(resp.Body, &zones)
	if err != nil {
		return nil, fmt.Errorf("parsing zones: %w", err)
	}

	return zones, nil
}

// Applications implements ccapi.ZonesClient.Applications.
func (c *ZonesClient) Applications(ctx context.Context) ([]ccapi.Zone, error) {
	return c.filtered(ctx, ccapi.ZoneTagApplications)
}

// HDS implements ccapi.ZonesClient.HDS. HDS zones are application zones that
// additionally carry the certification tag.
func (c *ZonesClient) HDS(ctx context.Context) ([]ccapi.Zone, error) {
	return c.filtered(ctx, ccapi.ZoneTagApplications, ccapi.ZoneTagHDS)
}

func (c *ZonesClient) filtered(ctx context.Context, tags ...string) ([]ccapi.Zone, error) {
	zones, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]ccapi.Zone, 0, len(zones))

	for _, zone := range zones {
		keep := true

		for _, tag := range tags {
			if !zone.HasTag(tag) {
				keep = false

				break
			}
		}

		if keep {
			filtered = append(filtered, zone)
		}
	}

	return filtered, nil
}
