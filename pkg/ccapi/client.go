package ccapi

import (
	"context"
	"time"
)

// PublicEndpoint is the default base URL of the Clever Cloud API.
const PublicEndpoint = "https://api.clever-cloud.com"

// Client provides access to every resource client of the API.
type Client interface {
	Self() SelfClient
	Organizations() OrganizationsClient
	Applications() ApplicationsClient
	Addons() AddonsClient
	AddonProviders() AddonProvidersClient
	ConfigProvider() ConfigProviderClient
	Functions() FunctionsClient
	Zones() ZonesClient
	Metrics() MetricsClient
}

// SelfClient interacts with the currently authenticated user.
type SelfClient interface {
	Get(ctx context.Context) (*Self, error)
}

// OrganizationsClient interacts with organisations.
type OrganizationsClient interface {
	List(ctx context.Context) ([]Organization, error)
	Get(ctx context.Context, orgID string) (*Organization, error)
}

// ApplicationsClient interacts with an organisation's applications.
type ApplicationsClient interface {
	List(ctx context.Context, orgID string) ([]Application, error)
	Get(ctx context.Context, orgID, appID string) (*Application, error)
	Create(ctx context.Context, orgID string, opts *ApplicationCreateOptions) (*Application, error)
	Update(ctx context.Context, orgID, appID string, opts *ApplicationCreateOptions) (*Application, error)
	Delete(ctx context.Context, orgID, appID string) error
	Env(ctx context.Context, orgID, appID string) (map[string]string, error)
	UpdateEnv(ctx context.Context, orgID, appID string, env map[string]string) error
	Instances(ctx context.Context, orgID, appID string) ([]AppInstance, error)
	Restart(ctx context.Context, orgID, appID string) error
	Undeploy(ctx context.Context, orgID, appID string) error
}

// AddonsClient interacts with an organisation's addons.
type AddonsClient interface {
	List(ctx context.Context, orgID string) ([]Addon, error)
	Get(ctx context.Context, orgID, addonID string) (*Addon, error)
	Create(ctx context.Context, orgID string, opts *AddonCreateOptions) (*Addon, error)
	Delete(ctx context.Context, orgID, addonID string) error
	Env(ctx context.Context, orgID, addonID string) (map[string]string, error)
}

// AddonProvidersClient interacts with the addon provider catalog.
type AddonProvidersClient interface {
	ListProviders(ctx context.Context) ([]AddonProviderInfo, error)
	GetProvider(ctx context.Context, providerID AddonProviderID) (*AddonProviderInfo, error)
	ListPlans(ctx context.Context, providerID AddonProviderID, orgID string) (*AddonProviderInfo, error)
	FindPlan(ctx context.Context, providerID AddonProviderID, orgID, pattern string) (*AddonPlan, error)
	GetClusters(ctx context.Context, providerID AddonProviderID) (*ProviderClusters, error)
}

// ConfigProviderClient interacts with a config-provider addon's environment.
type ConfigProviderClient interface {
	Env(ctx context.Context, addonID string) ([]Variable, error)
	SetEnv(ctx context.Context, addonID string, variables []Variable) ([]Variable, error)
	Insert(ctx context.Context, addonID string, variable Variable) ([]Variable, error)
	BulkInsert(ctx context.Context, addonID string, variables []Variable) ([]Variable, error)
	Remove(ctx context.Context, addonID, name string) ([]Variable, error)
	BulkRemove(ctx context.Context, addonID string, names []string) ([]Variable, error)
}

// FunctionsClient interacts with the functions product and its deployments.
type FunctionsClient interface {
	List(ctx context.Context, orgID string) ([]Function, error)
	Get(ctx context.Context, orgID, functionID string) (*Function, error)
	Create(ctx context.Context, orgID string, opts *FunctionOptions) (*Function, error)
	Update(ctx context.Context, orgID, functionID string, opts *FunctionOptions) (*Function, error)
	Delete(ctx context.Context, orgID, functionID string) error

	ListDeployments(ctx context.Context, orgID, functionID string) ([]Deployment, error)
	GetDeployment(ctx context.Context, orgID, functionID, deploymentID string) (*Deployment, error)
	CreateDeployment(ctx context.Context, orgID, functionID string, opts *DeploymentOptions) (*DeploymentCreation, error)
	TriggerDeployment(ctx context.Context, orgID, functionID, deploymentID string) error
	DeleteDeployment(ctx context.Context, orgID, functionID, deploymentID string) error
	Upload(ctx context.Context, uploadURL string, wasm []byte) error
	Execute(ctx context.Context, endpoint string) (*ExecutionResult, error)
}

// ZonesClient interacts with deployment zones.
type ZonesClient interface {
	List(ctx context.Context) ([]Zone, error)
	Applications(ctx context.Context) ([]Zone, error)
	HDS(ctx context.Context) ([]Zone, error)
}

// MetricsClient fetches metrics for a deployed resource.
type MetricsClient interface {
	Get(ctx context.Context, orgID, resourceID, interval string) ([]Metric, error)
}

// Logger is the structured logging interface used by the HTTP layer. Any
// structured logger can be adapted to it; the CLI wires zerolog through it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything needed to build a client.
//
// # Authentication
//
// The API signs every request with OAuth1 credentials: a consumer key/secret
// pair identifying the application and a token/secret pair identifying the
// user. All four must be set for authenticated calls; when all are empty the
// client sends unsigned requests, which only works against test servers.
//
// # Retries
//
// Transient failures (connection errors, 5xx, 429) are retried by the
// transport. RetryMax of 0 keeps the transport default; RetryWaitMin and
// RetryWaitMax bound the backoff between attempts.
type Config struct {
	// Endpoint is the base URL of the API. Defaults to PublicEndpoint.
	Endpoint string

	// OAuth1 credentials.
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	Secret         string

	// RetryMax is the maximum number of retries for transient failures.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives structured logs from the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally caches GET responses. Nil disables caching.
	Cache *CacheConfig
}
