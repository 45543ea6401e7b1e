package ccapi

import (
	"fmt"
	"strings"
	"time"
)

// MIMEApplicationWasm is the content type of deployment artifacts.
const MIMEApplicationWasm = "application/wasm"

// DefaultFunctionMaxMemory is the default memory limit of a function.
const DefaultFunctionMaxMemory = 512 * 1024 * 1024

// Platform is the WebAssembly platform a deployment is built for.
type Platform string

// Supported platforms.
const (
	PlatformRust           Platform = "RUST"
	PlatformJavaScript     Platform = "JAVA_SCRIPT"
	PlatformTinyGo         Platform = "TINY_GO"
	PlatformAssemblyScript Platform = "ASSEMBLY_SCRIPT"
)

// ParsePlatform parses a platform name, tolerating case and underscores.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "") {
	case "rust":
		return PlatformRust, nil
	case "javascript", "js":
		return PlatformJavaScript, nil
	case "tinygo", "go":
		return PlatformTinyGo, nil
	case "assemblyscript":
		return PlatformAssemblyScript, nil
	default:
		return "", fmt.Errorf("failed to parse platform %q, available values are 'rust', "+
			"'javascript' ('js'), 'tiny_go' ('go') and 'assemblyscript'", s)
	}
}

func (p Platform) String() string {
	return string(p)
}

// DeploymentStatus is the lifecycle state of a function deployment.
type DeploymentStatus string

// Deployment states.
const (
	DeploymentWaitingForUpload DeploymentStatus = "WAITING_FOR_UPLOAD"
	DeploymentPackaging        DeploymentStatus = "PACKAGING"
	DeploymentDeploying        DeploymentStatus = "DEPLOYING"
	DeploymentReady            DeploymentStatus = "READY"
	DeploymentError            DeploymentStatus = "ERROR"
)

// ParseDeploymentStatus parses a deployment status, tolerating case and
// underscores.
func ParseDeploymentStatus(s string) (DeploymentStatus, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "") {
	case "waitingforupload":
		return DeploymentWaitingForUpload, nil
	case "packaging":
		return DeploymentPackaging, nil
	case "deploying":
		return DeploymentDeploying, nil
	case "ready":
		return DeploymentReady, nil
	case "error":
		return DeploymentError, nil
	default:
		return "", fmt.Errorf("failed to parse status %q, available values are "+
			"'waiting_for_upload', 'packaging', 'deploying', 'ready' and 'error'", s)
	}
}

func (s DeploymentStatus) String() string {
	return string(s)
}

// Function represents a function of an organisation.
type Function struct {
	ID           string            `json:"id"           yaml:"id"`
	OwnerID      string            `json:"ownerId"      yaml:"ownerId"`
	Name         *string           `json:"name"         yaml:"name"`
	Description  *string           `json:"description"  yaml:"description"`
	Tag          *string           `json:"tag"          yaml:"tag"`
	Environment  map[string]string `json:"environment"  yaml:"environment"`
	MaxMemory    int64             `json:"maxMemory"    yaml:"maxMemory"`
	MaxInstances int64             `json:"maxInstances" yaml:"maxInstances"`
	CreatedAt    time.Time         `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"    yaml:"updatedAt"`
}

// FunctionOptions is the payload for creating or updating a function.
type FunctionOptions struct {
	Name         *string           `json:"name"         yaml:"name"`
	Description  *string           `json:"description"  yaml:"description"`
	Tag          *string           `json:"tag"          yaml:"tag"`
	Environment  map[string]string `json:"environment"  yaml:"environment"`
	MaxMemory    int64             `json:"maxMemory"    yaml:"maxMemory"`
	MaxInstances int64             `json:"maxInstances" yaml:"maxInstances"`
}

// DefaultFunctionOptions returns options with the upstream defaults.
func DefaultFunctionOptions() *FunctionOptions {
	return &FunctionOptions{
		Environment:  map[string]string{},
		MaxMemory:    DefaultFunctionMaxMemory,
		MaxInstances: 1,
	}
}

// DeploymentOptions is the payload for creating a deployment.
type DeploymentOptions struct {
	Name        *string  `json:"name"        yaml:"name"`
	Description *string  `json:"description" yaml:"description"`
	Tag         *string  `json:"tag"         yaml:"tag"`
	Platform    Platform `json:"platform"    yaml:"platform"`
}

// Deployment represents a deployment of a function.
type Deployment struct {
	ID          string           `json:"id"          yaml:"id"`
	FunctionID  string           `json:"functionId"  yaml:"functionId"`
	Name        *string          `json:"name"        yaml:"name"`
	Description *string          `json:"description" yaml:"description"`
	Tag         *string          `json:"tag"         yaml:"tag"`
	Platform    Platform         `json:"platform"    yaml:"platform"`
	Status      DeploymentStatus `json:"status"      yaml:"status"`
	Reason      *string          `json:"errorReason" yaml:"errorReason"`
	URL         *string          `json:"url"         yaml:"url"`
	CreatedAt   time.Time        `json:"createdAt"   yaml:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"   yaml:"updatedAt"`
}

// ExecutionResult is the response of a deployed function's endpoint. A run
// that reached the function carries its output streams; a failed run carries
// Error instead.
type ExecutionResult struct {
	Stdout       string  `json:"stdout,omitempty"        yaml:"stdout,omitempty"`
	Stderr       string  `json:"stderr,omitempty"        yaml:"stderr,omitempty"`
	Dmesg        string  `json:"dmesg,omitempty"         yaml:"dmesg,omitempty"`
	CurrentPages *uint64 `json:"current_pages,omitempty" yaml:"current_pages,omitempty"`
	Error        *string `json:"error,omitempty"         yaml:"error,omitempty"`
}

// OK reports whether the run completed without a runtime error.
func (r *ExecutionResult) OK() bool {
	return r.Error == nil
}

// DeploymentCreation is the response to a deployment creation; it carries the
// pre-signed URL the WebAssembly artifact must be uploaded to.
type DeploymentCreation struct {
	ID          string           `json:"id"          yaml:"id"`
	FunctionID  string           `json:"functionId"  yaml:"functionId"`
	Name        *string          `json:"name"        yaml:"name"`
	Description *string          `json:"description" yaml:"description"`
	Tag         *string          `json:"tag"         yaml:"tag"`
	Platform    Platform         `json:"platform"    yaml:"platform"`
	Status      DeploymentStatus `json:"status"      yaml:"status"`
	Reason      *string          `json:"errorReason" yaml:"errorReason"`
	UploadURL   string           `json:"uploadUrl"   yaml:"uploadUrl"`
	CreatedAt   time.Time        `json:"createdAt"   yaml:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"   yaml:"updatedAt"`
}
