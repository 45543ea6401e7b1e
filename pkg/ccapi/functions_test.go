package ccapi_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected ccapi.Platform
		wantErr  bool
	}{
		{input: "rust", expected: ccapi.PlatformRust},
		{input: "RUST", expected: ccapi.PlatformRust},
		{input: "javascript", expected: ccapi.PlatformJavaScript},
		{input: "JAVA_SCRIPT", expected: ccapi.PlatformJavaScript},
		{input: "js", expected: ccapi.PlatformJavaScript},
		{input: "tiny_go", expected: ccapi.PlatformTinyGo},
		{input: "go", expected: ccapi.PlatformTinyGo},
		{input: "AssemblyScript", expected: ccapi.PlatformAssemblyScript},
		{input: " rust ", expected: ccapi.PlatformRust},
		{input: "cobol", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			platform, err := ccapi.ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, platform)
		})
	}
}

func TestParseDeploymentStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected ccapi.DeploymentStatus
		wantErr  bool
	}{
		{input: "waiting_for_upload", expected: ccapi.DeploymentWaitingForUpload},
		{input: "WAITING_FOR_UPLOAD", expected: ccapi.DeploymentWaitingForUpload},
		{input: "packaging", expected: ccapi.DeploymentPackaging},
		{input: "deploying", expected: ccapi.DeploymentDeploying},
		{input: "ready", expected: ccapi.DeploymentReady},
		{input: "error", expected: ccapi.DeploymentError},
		{input: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			status, err := ccapi.ParseDeploymentStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestDeployment_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": "deployment_1",
		"functionId": "function_1",
		"name": "release",
		"description": null,
		"tag": "v1",
		"platform": "RUST",
		"status": "READY",
		"errorReason": null,
		"url": "https://example.functions.clever-cloud.com",
		"createdAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-01T10:05:00Z"
	}`)

	var deployment ccapi.Deployment

	require.NoError(t, json.Unmarshal(body, &deployment))

	assert.Equal(t, "deployment_1", deployment.ID)
	assert.Equal(t, "function_1", deployment.FunctionID)
	require.NotNil(t, deployment.Name)
	assert.Equal(t, "release", *deployment.Name)
	assert.Nil(t, deployment.Description)
	assert.Equal(t, ccapi.PlatformRust, deployment.Platform)
	assert.Equal(t, ccapi.DeploymentReady, deployment.Status)
	assert.Nil(t, deployment.Reason)
	require.NotNil(t, deployment.URL)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), deployment.CreatedAt)
}

func TestDeploymentCreation_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": "deployment_2",
		"functionId": "function_1",
		"platform": "TINY_GO",
		"status": "WAITING_FOR_UPLOAD",
		"uploadUrl": "https://upload.example.com/presigned",
		"createdAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-01T10:00:00Z"
	}`)

	var creation ccapi.DeploymentCreation

	require.NoError(t, json.Unmarshal(body, &creation))

	assert.Equal(t, ccapi.DeploymentWaitingForUpload, creation.Status)
	assert.Equal(t, "https://upload.example.com/presigned", creation.UploadURL)
}

func TestDefaultFunctionOptions(t *testing.T) {
	t.Parallel()

	opts := ccapi.DefaultFunctionOptions()

	assert.Nil(t, opts.Name)
	assert.NotNil(t, opts.Environment)
	assert.Equal(t, int64(ccapi.DefaultFunctionMaxMemory), opts.MaxMemory)
	assert.Equal(t, int64(1), opts.MaxInstances)
}
