package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// ApplicationsClient implements ccapi.ApplicationsClient.
type ApplicationsClient struct {
	httpClient *http.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(httpClient *http.Client) *ApplicationsClient {
	return &ApplicationsClient{
		httpClient: httpClient,
	}
}

func applicationsPath(orgID string) string {
	return "/v2/organisations/" + orgID + "/applications"
}

// List implements ccapi.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, orgID string) ([]ccapi.Application, error) {
	resp, err := c.httpClient.Get(ctx, applicationsPath(orgID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var applications []ccapi.Application

	err = json.Unmarshal(resp.Body, &applications)
	if err != nil {
		return nil, fmt.Errorf("parsing applications: %w", err)
	}

	return applications, nil
}

// Get implements ccapi.ApplicationsClient.Get.
func (c *ApplicationsClient) Get(ctx context.Context, orgID, appID string) (*ccapi.Application, error) {
	path := applicationsPath(orgID) + "/" + appID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	var application ccapi.Application

	err = json.Unmarshal(resp.Body, &application)
	if err != nil {
		return nil, fmt.Errorf("parsing application: %w", err)
	}

	return &application, nil
}

// Create implements ccapi.ApplicationsClient.Create.
func (c *ApplicationsClient) Create(ctx context.Context, orgID string, opts *ccapi.ApplicationCreateOptions) (*ccapi.Application, error) {
	resp, err := c.httpClient.Post(ctx, applicationsPath(orgID), opts)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	var application ccapi.Application

	err = json.Unmarshal(resp.Body, &application)
	if err != nil {
		return nil, fmt.Errorf("parsing application: %w", err)
	}

	return &application, nil
}

// Update implements ccapi.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, orgID, appID string, opts *ccapi.ApplicationCreateOptions) (*ccapi.Application, error) {
	path := applicationsPath(orgID) + "/" + appID

	resp, err := c.httpClient.Put(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	var application ccapi.Application

	err = json.Unmarshal(resp.Body, &application)
	if err != nil {
		return nil, fmt.Errorf("parsing application: %w", err)
	}

	return &application, nil
}

// Delete implements ccapi.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, orgID, appID string) error {
	path := applicationsPath(orgID) + "/" + appID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}

// Env implements ccapi.ApplicationsClient.Env.
func (c *ApplicationsClient) Env(ctx context.Context, orgID, appID string) (map[string]string, error) {
	path := applicationsPath(orgID) + "/" + appID + "/env"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting application environment: %w", err)
	}

	var variables []ccapi.Variable

	err = json.Unmarshal(resp.Body, &variables)
	if err != nil {
		return nil, fmt.Errorf("parsing application environment: %w", err)
	}

	return ccapi.VariablesToMap(variables), nil
}

// UpdateEnv implements ccapi.ApplicationsClient.UpdateEnv.
func (c *ApplicationsClient) UpdateEnv(ctx context.Context, orgID, appID string, env map[string]string) error {
	path := applicationsPath(orgID) + "/" + appID + "/env"

	_, err := c.httpClient.Put(ctx, path, env)
	if err != nil {
		return fmt.Errorf("updating application environment: %w", err)
	}

	return nil
}

// Instances implements ccapi.ApplicationsClient.Instances.
func (c *ApplicationsClient) Instances(ctx context.Context, orgID, appID string) ([]ccapi.AppInstance, error) {
	path := applicationsPath(orgID) + "/" + appID + "/instances"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing application instances: %w", err)
	}

	var instances []ccapi.AppInstance

	err = json.Unmarshal(resp.Body, &instances)
	if err != nil {
		return nil, fmt.Errorf("parsing application instances: %w", err)
	}

	return instances, nil
}

// Restart implements ccapi.ApplicationsClient.Restart.
func (c *ApplicationsClient) Restart(ctx context.Context, orgID, appID string) error {
	path := applicationsPath(orgID) + "/" + appID + "/instances"

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("restarting application: %w", err)
	}

	return nil
}

// Undeploy implements ccapi.ApplicationsClient.Undeploy.
func (c *ApplicationsClient) Undeploy(ctx context.Context, orgID, appID string) error {
	path := applicationsPath(orgID) + "/" + appID + "/instances"

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("stopping application: %w", err)
	}

	return nil
}
