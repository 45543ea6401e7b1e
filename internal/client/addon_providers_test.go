package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/internal/client"
	cchttp "github.com/clevercloud-community/clevercloud-go/internal/http"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v2/products/addonproviders":
			_ = json.NewEncoder(writer).Encode([]ccapi.AddonProviderInfo{
				{ID: "postgresql-addon", Name: "PostgreSQL", Status: "RELEASE"},
				{ID: "redis-addon", Name: "Redis", Status: "RELEASE"},
			})
		case "/v2/products/addonproviders/postgresql-addon":
			assert.Equal(t, "orga_1", request.URL.Query().Get("orga_id"))

			_ = json.NewEncoder(writer).Encode(ccapi.AddonProviderInfo{
				ID:   "postgresql-addon",
				Name: "PostgreSQL",
				Plans: []ccapi.AddonPlan{
					{ID: "plan_1", Name: "XS Small Space", Slug: "xs_sml", Price: 5},
					{ID: "plan_2", Name: "S Medium Space", Slug: "s_med", Price: 15},
				},
			})
		case "/v2/products/addonproviders/config-provider":
			_ = json.NewEncoder(writer).Encode(ccapi.AddonProviderInfo{
				ID:   "config-provider",
				Name: "Configuration provider",
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestAddonProvidersClient_ListProviders(t *testing.T) {
	t.Parallel()

	server := newCatalogServer(t)
	defer server.Close()

	providersClient := client.NewAddonProvidersClient(cchttp.NewClient(server.URL, nil))

	providers, err := providersClient.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "PostgreSQL", providers[0].Name)
}

func TestAddonProvidersClient_FindPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		expected string
		wantErr  bool
	}{
		{name: "match by slug", pattern: "xs_sml", expected: "plan_1"},
		{name: "match by identifier", pattern: "plan_2", expected: "plan_2"},
		{name: "match by name", pattern: "s medium space", expected: "plan_2"},
		{name: "case-insensitive", pattern: "XS_SML", expected: "plan_1"},
		{name: "no match", pattern: "xxl", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newCatalogServer(t)
			defer server.Close()

			providersClient := client.NewAddonProvidersClient(cchttp.NewClient(server.URL, nil))

			plan, err := providersClient.FindPlan(context.Background(),
				ccapi.AddonProviderPostgreSQL, "orga_1", tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				// the error lists the available plans
				assert.Contains(t, err.Error(), "xs_sml")
				assert.Contains(t, err.Error(), "s_med")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, plan.ID)
		})
	}

	t.Run("provider without plans", func(t *testing.T) {
		t.Parallel()

		server := newCatalogServer(t)
		defer server.Close()

		providersClient := client.NewAddonProvidersClient(cchttp.NewClient(server.URL, nil))

		plan, err := providersClient.FindPlan(context.Background(),
			ccapi.AddonProviderConfigProvider, "", "base")
		require.NoError(t, err)
		assert.Nil(t, plan)
	})
}

func TestAddonProvidersClient_GetClusters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v4/addon-providers/redis-addon", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(ccapi.ProviderClusters{
			ProviderID:     ccapi.AddonProviderRedis,
			Clusters:       []ccapi.Cluster{{ID: "cluster_1", Label: "shared-par", Zone: "par", Version: "7"}},
			DefaultVersion: "7",
		})
	}))
	defer server.Close()

	providersClient := client.NewAddonProvidersClient(cchttp.NewClient(server.URL, nil))

	clusters, err := providersClient.GetClusters(context.Background(), ccapi.AddonProviderRedis)
	require.NoError(t, err)
	require.Len(t, clusters.Clusters, 1)
	assert.Equal(t, "shared-par", clusters.Clusters[0].Label)
	assert.Equal(t, "7", clusters.DefaultVersion)
}
