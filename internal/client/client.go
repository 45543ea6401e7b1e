// Package client implements the resource clients behind the ccapi.Client
// interface.
package client

import (
	"context"
	nethttp "net/http"

	"github.com/clevercloud-community/clevercloud-go/internal/auth"
	"github.com/clevercloud-community/clevercloud-go/internal/constants"
	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// Client implements the ccapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ccapi.Logger

	// Resource clients
	self           ccapi.SelfClient
	organizations  ccapi.OrganizationsClient
	applications   ccapi.ApplicationsClient
	addons         ccapi.AddonsClient
	addonProviders ccapi.AddonProvidersClient
	configProvider ccapi.ConfigProviderClient
	functions      ccapi.FunctionsClient
	zones          ccapi.ZonesClient
	metrics        ccapi.MetricsClient
}

// New creates a client from the configuration. The endpoint must be set; the
// entry point package fills in defaults before calling here.
func New(ctx context.Context, config *ccapi.Config) (*Client, error) {
	if config == nil {
		return nil, ccapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, ccapi.ErrEndpointRequired
	}

	httpClient, err := buildTransport(ctx, config)
	if err != nil {
		return nil, err
	}

	opts := buildOptions(config)

	client := &Client{
		httpClient: http.NewClient(config.Endpoint, httpClient, opts...),
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// buildTransport returns the signing HTTP client, or nil when no credentials
// are configured.
func buildTransport(ctx context.Context, config *ccapi.Config) (*nethttp.Client, error) {
	hasAny := config.ConsumerKey != "" || config.ConsumerSecret != "" ||
		config.Token != "" || config.Secret != ""
	hasAll := config.ConsumerKey != "" && config.ConsumerSecret != "" &&
		config.Token != "" && config.Secret != ""

	if !hasAny {
		return nil, nil
	}

	if !hasAll {
		return nil, ccapi.ErrIncompleteCredentials
	}

	httpClient := auth.NewHTTPClient(ctx, config.ConsumerKey, config.ConsumerSecret,
		config.Token, config.Secret)
	httpClient.Timeout = constants.DefaultHTTPTimeout

	return httpClient, nil
}

// buildOptions translates the configuration into transport options.
func buildOptions(config *ccapi.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.Cache != nil {
		cache, err := ccapi.NewCacheFromConfig(config.Cache)
		if err == nil {
			opts = append(opts, http.WithCache(cache, config.Cache.TTL))
		} else if config.Logger != nil {
			config.Logger.Warn("cache disabled", map[string]interface{}{"error": err.Error()})
		}
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.self = NewSelfClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.applications = NewApplicationsClient(c.httpClient)
	c.addons = NewAddonsClient(c.httpClient)
	c.addonProviders = NewAddonProvidersClient(c.httpClient)
	c.configProvider = NewConfigProviderClient(c.httpClient)
	c.functions = NewFunctionsClient(c.httpClient)
	c.zones = NewZonesClient(c.httpClient)
	c.metrics = NewMetricsClient(c.httpClient)
}

// Self returns the self client.
func (c *Client) Self() ccapi.SelfClient {
	return c.self
}

// Organizations returns the organisations client.
func (c *Client) Organizations() ccapi.OrganizationsClient {
	return c.organizations
}

// Applications returns the applications client.
func (c *Client) Applications() ccapi.ApplicationsClient {
	return c.applications
}

// Addons returns the addons client.
func (c *Client) Addons() ccapi.AddonsClient {
	return c.addons
}

// AddonProviders returns the addon providers client.
func (c *Client) AddonProviders() ccapi.AddonProvidersClient {
	return c.addonProviders
}

// ConfigProvider returns the config-provider client.
func (c *Client) ConfigProvider() ccapi.ConfigProviderClient {
	return c.configProvider
}

// Functions returns the functions client.
func (c *Client) Functions() ccapi.FunctionsClient {
	return c.functions
}

// Zones returns the zones client.
func (c *Client) Zones() ccapi.ZonesClient {
	return c.zones
}

// Metrics returns the metrics client.
func (c *Client) Metrics() ccapi.MetricsClient {
	return c.metrics
}
