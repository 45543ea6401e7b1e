package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// SelfClient implements ccapi.SelfClient.
type SelfClient struct {
	httpClient *http.Client
}

// NewSelfClient creates a new self client.
func NewSelfClient(httpClient *http.Client) *SelfClient {
	return &SelfClient{
		httpClient: httpClient,
	}
}

// Get implements ccapi.SelfClient.Get.
func (c *SelfClient) Get(ctx context.Context) (*ccapi.Self, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/self", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var self ccapi.Self

	err = json.Unmarshal(resp.Body, &self)
	if err != nil {
		return nil, fmt.Errorf("parsing current user: %w", err)
	}

	return &self, nil
}
