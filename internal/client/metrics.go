package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// MetricsClient implements ccapi.MetricsClient.
type MetricsClient struct {
	httpClient *http.Client
}

// NewMetricsClient creates a new metrics client.
func NewMetricsClient(httpClient *http.Client) *MetricsClient {
	return &MetricsClient{
		httpClient: httpClient,
	}
}

// Get implements ccapi.MetricsClient.Get. interval is a duration expression
// like "PT1H"; the API default applies when empty.
func (c *MetricsClient) Get(ctx context.Context, orgID, resourceID, interval string) ([]ccapi.Metric, error) {
	path := "/v4/stats/organisations/" + orgID + "/resources/" + resourceID + "/metrics"

	query := url.Values{}
	if interval != "" {
		query.Set("interval", interval)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting resource metrics: %w", err)
	}

	var metrics []ccapi.Metric

	err = json.Unmarshal(resp.Body, &metrics)
	if err != nil {
		return nil, fmt.Errorf("parsing resource metrics: %w", err)
	}

	return metrics, nil
}
