package ccapi_test

import (
	"encoding/json"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddonProviderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected ccapi.AddonProviderID
		wantErr  bool
	}{
		{input: "postgresql-addon", expected: ccapi.AddonProviderPostgreSQL},
		{input: "POSTGRESQL-ADDON", expected: ccapi.AddonProviderPostgreSQL},
		{input: "mysql-addon", expected: ccapi.AddonProviderMySQL},
		{input: "redis-addon", expected: ccapi.AddonProviderRedis},
		{input: "mongodb-addon", expected: ccapi.AddonProviderMongoDB},
		{input: "es-addon", expected: ccapi.AddonProviderElasticsearch},
		{input: "addon-pulsar", expected: ccapi.AddonProviderPulsar},
		{input: "config-provider", expected: ccapi.AddonProviderConfigProvider},
		{input: "postgresql", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			id, err := ccapi.ParseAddonProviderID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "available options")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestProviderClusters_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"providerId": "postgresql-addon",
		"clusters": [
			{
				"id": "cluster_1",
				"label": "shared-par",
				"zone": "par",
				"version": "15",
				"features": [{"name": "encryption", "enabled": true}]
			}
		],
		"dedicated": {
			"15": [{"name": "encryption", "enabled": true}],
			"14": [{"name": "encryption", "enabled": false}]
		},
		"defaultDedicatedVersion": "15"
	}`)

	var clusters ccapi.ProviderClusters

	require.NoError(t, json.Unmarshal(body, &clusters))

	assert.Equal(t, ccapi.AddonProviderPostgreSQL, clusters.ProviderID)
	require.Len(t, clusters.Clusters, 1)
	assert.Equal(t, "shared-par", clusters.Clusters[0].Label)
	assert.True(t, clusters.Clusters[0].Features[0].Enabled)
	assert.Equal(t, "15", clusters.DefaultVersion)
	assert.Len(t, clusters.Dedicated, 2)
}
