package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/internal/client"
	cchttp "github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configProviderServer keeps a mutable environment behind the
// config-provider endpoint.
type configProviderServer struct {
	mu        sync.Mutex
	variables []ccapi.Variable
	server    *httptest.Server
}

func newConfigProviderServer(t *testing.T, initial []ccapi.Variable) *configProviderServer {
	t.Helper()

	cps := &configProviderServer{variables: initial}

	cps.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v4/addon-providers/config-provider/addons/addon_1/env", request.URL.Path)

		cps.mu.Lock()
		defer cps.mu.Unlock()

		switch request.Method {
		case http.MethodGet:
			_ = json.NewEncoder(writer).Encode(cps.variables)
		case http.MethodPut:
			var incoming []ccapi.Variable

			require.NoError(t, json.NewDecoder(request.Body).Decode(&incoming))
			cps.variables = incoming
			_ = json.NewEncoder(writer).Encode(cps.variables)
		default:
			writer.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	return cps
}

func TestConfigProviderClient_Env(t *testing.T) {
	t.Parallel()

	cps := newConfigProviderServer(t, []ccapi.Variable{{Name: "MODE", Value: "production"}})
	defer cps.server.Close()

	cpClient := client.NewConfigProviderClient(cchttp.NewClient(cps.server.URL, nil))

	variables, err := cpClient.Env(context.Background(), "addon_1")
	require.NoError(t, err)
	assert.Equal(t, []ccapi.Variable{{Name: "MODE", Value: "production"}}, variables)
}

func TestConfigProviderClient_BulkInsert(t *testing.T) {
	t.Parallel()

	cps := newConfigProviderServer(t, []ccapi.Variable{
		{Name: "MODE", Value: "production"},
		{Name: "TIMEOUT", Value: "30"},
	})
	defer cps.server.Close()

	cpClient := client.NewConfigProviderClient(cchttp.NewClient(cps.server.URL, nil))

	updated, err := cpClient.BulkInsert(context.Background(), "addon_1", []ccapi.Variable{
		{Name: "TIMEOUT", Value: "60"},
		{Name: "RETRIES", Value: "3"},
	})
	require.NoError(t, err)

	// existing values are kept, duplicates overwritten, output sorted
	assert.Equal(t, []ccapi.Variable{
		{Name: "MODE", Value: "production"},
		{Name: "RETRIES", Value: "3"},
		{Name: "TIMEOUT", Value: "60"},
	}, updated)
}

func TestConfigProviderClient_Insert(t *testing.T) {
	t.Parallel()

	cps := newConfigProviderServer(t, nil)
	defer cps.server.Close()

	cpClient := client.NewConfigProviderClient(cchttp.NewClient(cps.server.URL, nil))

	updated, err := cpClient.Insert(context.Background(), "addon_1", ccapi.Variable{Name: "MODE", Value: "test"})
	require.NoError(t, err)
	assert.Equal(t, []ccapi.Variable{{Name: "MODE", Value: "test"}}, updated)
}

func TestConfigProviderClient_BulkRemove(t *testing.T) {
	t.Parallel()

	cps := newConfigProviderServer(t, []ccapi.Variable{
		{Name: "MODE", Value: "production"},
		{Name: "RETRIES", Value: "3"},
		{Name: "TIMEOUT", Value: "30"},
	})
	defer cps.server.Close()

	cpClient := client.NewConfigProviderClient(cchttp.NewClient(cps.server.URL, nil))

	updated, err := cpClient.BulkRemove(context.Background(), "addon_1", []string{"TIMEOUT", "ABSENT"})
	require.NoError(t, err)

	assert.Equal(t, []ccapi.Variable{
		{Name: "MODE", Value: "production"},
		{Name: "RETRIES", Value: "3"},
	}, updated)
}

func TestConfigProviderClient_SetEnv(t *testing.T) {
	t.Parallel()

	cps := newConfigProviderServer(t, []ccapi.Variable{{Name: "OLD", Value: "gone"}})
	defer cps.server.Close()

	cpClient := client.NewConfigProviderClient(cchttp.NewClient(cps.server.URL, nil))

	updated, err := cpClient.SetEnv(context.Background(), "addon_1", []ccapi.Variable{{Name: "NEW", Value: "here"}})
	require.NoError(t, err)
	assert.Equal(t, []ccapi.Variable{{Name: "NEW", Value: "here"}}, updated)
}
