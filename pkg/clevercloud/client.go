package clevercloud

import (
	"context"
	"fmt"
	"strings"

	"github.com/clevercloud-community/clevercloud-go/internal/client"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// New creates a new Clever Cloud API client. The endpoint defaults to the
// public API; credentials may be omitted for test servers that skip request
// signing.
func New(ctx context.Context, config *ccapi.Config) (ccapi.Client, error) {
	if config == nil {
		return nil, ccapi.ErrConfigRequired
	}

	// Normalize the endpoint
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = ccapi.PublicEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}
