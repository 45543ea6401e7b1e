package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/clevercloud-community/clevercloud-go/internal/constants"
	"github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
)

// FunctionsClient implements ccapi.FunctionsClient.
type FunctionsClient struct {
	httpClient *http.Client
	// directClient talks to URLs outside the API, pre-signed upload URLs and
	// function endpoints, which must not be OAuth1 signed.
	directClient *nethttp.Client
}

// NewFunctionsClient creates a new functions client.
func NewFunctionsClient(httpClient *http.Client) *FunctionsClient {
	return &FunctionsClient{
		httpClient:   httpClient,
		directClient: &nethttp.Client{Timeout: constants.UploadHTTPTimeout},
	}
}

func functionsPath(orgID string) string {
	return "/v4/functions/organisations/" + orgID + "/functions"
}

// List implements ccapi.FunctionsClient.List.
func (c *FunctionsClient) List(ctx context.Context, orgID string) ([]ccapi.Function, error) {
	resp, err := c.httpClient.Get(ctx, functionsPath(orgID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing functions: %w", err)
	}

	var functions []ccapi.Function

	err = json.Unmarshal(resp.Body, &functions)
	if err != nil {
		return nil, fmt.Errorf("parsing functions: %w", err)
	}

	return functions, nil
}

// Get implements ccapi.FunctionsClient.Get.
func (c *FunctionsClient) Get(ctx context.Context, orgID, functionID string) (*ccapi.Function, error) {
	path := functionsPath(orgID) + "/" + functionID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting function: %w", err)
	}

	var function ccapi.Function

	err = json.Unmarshal(resp.Body, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Create implements ccapi.FunctionsClient.Create.
func (c *FunctionsClient) Create(ctx context.Context, orgID string, opts *ccapi.FunctionOptions) (*ccapi.Function, error) {
	resp, err := c.httpClient.Post(ctx, functionsPath(orgID), opts)
	if err != nil {
		return nil, fmt.Errorf("creating function: %w", err)
	}

	var function ccapi.Function

	err = json.Unmarshal(resp.Body, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Update implements ccapi.FunctionsClient.Update.
func (c *FunctionsClient) Update(ctx context.Context, orgID, functionID string, opts *ccapi.FunctionOptions) (*ccapi.Function, error) {
	path := functionsPath(orgID) + "/" + functionID

	resp, err := c.httpClient.Put(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("updating function: %w", err)
	}

	var function ccapi.Function

	err = json.Unmarshal(resp.Body, &function)
	if err != nil {
		return nil, fmt.Errorf("parsing function: %w", err)
	}

	return &function, nil
}

// Delete implements ccapi.FunctionsClient.Delete.
func (c *FunctionsClient) Delete(ctx context.Context, orgID, functionID string) error {
	path := functionsPath(orgID) + "/" + functionID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting function: %w", err)
	}

	return nil
}

// ListDeployments implements ccapi.FunctionsClient.ListDeployments.
func (c *FunctionsClient) ListDeployments(ctx context.Context, orgID, functionID string) ([]ccapi.Deployment, error) {
	path := functionsPath(orgID) + "/" + functionID + "/deployments"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing deployments: %w", err)
	}

	var deployments []ccapi.Deployment

	err = json.Unmarshal(resp.Body, &deployments)
	if err != nil {
		return nil, fmt.Errorf("parsing deployments: %w", err)
	}

	return deployments, nil
}

// GetDeployment implements ccapi.FunctionsClient.GetDeployment.
func (c *FunctionsClient) GetDeployment(ctx context.Context, orgID, functionID, deploymentID string) (*ccapi.Deployment, error) {
	path := functionsPath(orgID) + "/" + functionID + "/deployments/" + deploymentID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting deployment: %w", err)
	}

	var deployment ccapi.Deployment

	err = json.Unmarshal(resp.Body, &deployment)
	if err != nil {
		return nil, fmt.Errorf("parsing deployment: %w", err)
	}

	return &deployment, nil
}

// CreateDeployment implements ccapi.FunctionsClient.CreateDeployment. The
// response carries the pre-signed URL to upload the artifact to.
func (c *FunctionsClient) CreateDeployment(ctx context.Context, orgID, functionID string, opts *ccapi.DeploymentOptions) (*ccapi.DeploymentCreation, error) {
	path := functionsPath(orgID) + "/" + functionID + "/deployments"

	resp, err := c.httpClient.Post(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("creating deployment: %w", err)
	}

	var creation ccapi.DeploymentCreation

	err = json.Unmarshal(resp.Body, &creation)
	if err != nil {
		return nil, fmt.Errorf("parsing deployment: %w", err)
	}

	return &creation, nil
}

// TriggerDeployment implements ccapi.FunctionsClient.TriggerDeployment. It
// tells the platform the artifact upload is complete.
func (c *FunctionsClient) TriggerDeployment(ctx context.Context, orgID, functionID, deploymentID string) error {
	path := functionsPath(orgID) + "/" + functionID + "/deployments/" + deploymentID + "/trigger"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ccapi.ErrTriggerFailed, err)
	}

	if resp.StatusCode != nethttp.StatusOK && resp.StatusCode != nethttp.StatusNoContent {
		return fmt.Errorf("%w: unexpected status %d", ccapi.ErrTriggerFailed, resp.StatusCode)
	}

	return nil
}

// DeleteDeployment implements ccapi.FunctionsClient.DeleteDeployment.
func (c *FunctionsClient) DeleteDeployment(ctx context.Context, orgID, functionID, deploymentID string) error {
	path := functionsPath(orgID) + "/" + functionID + "/deployments/" + deploymentID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting deployment: %w", err)
	}

	return nil
}

// Upload implements ccapi.FunctionsClient.Upload. The artifact is PUT
// directly to the pre-signed URL.
func (c *FunctionsClient) Upload(ctx context.Context, uploadURL string, wasm []byte) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPut, uploadURL, bytes.NewReader(wasm))
	if err != nil {
		return fmt.Errorf("%w: %w", ccapi.ErrUploadFailed, err)
	}

	req.Header.Set("Content-Type", ccapi.MIMEApplicationWasm)
	req.ContentLength = int64(len(wasm))

	resp, err := c.directClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ccapi.ErrUploadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status %d", ccapi.ErrUploadFailed, resp.StatusCode)
	}

	return nil
}

// Execute implements ccapi.FunctionsClient.Execute. The deployment endpoint
// lives outside the API, so the request is sent unsigned.
func (c *FunctionsClient) Execute(ctx context.Context, endpoint string) (*ccapi.ExecutionResult, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("executing function: %w", err)
	}

	resp, err := c.directClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing function: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading execution result: %w", err)
	}

	var result ccapi.ExecutionResult

	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing execution result: %w", err)
	}

	return &result, nil
}
