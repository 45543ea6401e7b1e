package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// OrganizationsClient implements ccapi.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organisations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// List implements ccapi.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context) ([]ccapi.Organization, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/organisations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing organisations: %w", err)
	}

	var organizations []ccapi.Organization

	err = json.Unmarshal(resp.Body, &organizations)
	if err != nil {
		return nil, fmt.Errorf("parsing organisations: %w", err)
	}

	return organizations, nil
}

// Get implements ccapi.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, orgID string) (*ccapi.Organization, error) {
	path := "/v2/organisations/" + orgID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organisation: %w", err)
	}

	var organization ccapi.Organization

	err = json.Unmarshal(resp.Body, &organization)
	if err != nil {
		return nil, fmt.Errorf("parsing organisation: %w", err)
	}

	return &organization, nil
}
