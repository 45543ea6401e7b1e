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

func TestMetricsClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("with interval", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v4/stats/organisations/orga_1/resources/app_1/metrics", request.URL.Path)
			assert.Equal(t, "PT1H", request.URL.Query().Get("interval"))

			_ = json.NewEncoder(writer).Encode([]ccapi.Metric{
				{
					Name: "cpu",
					Unit: "percent",
					Points: []ccapi.MetricPoint{
						{Timestamp: 1709290800000, Value: 12.5},
						{Timestamp: 1709290860000, Value: 14.0},
					},
				},
			})
		}))
		defer server.Close()

		metricsClient := client.NewMetricsClient(cchttp.NewClient(server.URL, nil))

		metrics, err := metricsClient.Get(context.Background(), "orga_1", "app_1", "PT1H")
		require.NoError(t, err)
		require.Len(t, metrics, 1)
		assert.Equal(t, "cpu", metrics[0].Name)
		require.Len(t, metrics[0].Points, 2)
		assert.InDelta(t, 14.0, metrics[0].Points[1].Value, 0.001)
	})

	t.Run("without interval", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)

			_ = json.NewEncoder(writer).Encode([]ccapi.Metric{})
		}))
		defer server.Close()

		metricsClient := client.NewMetricsClient(cchttp.NewClient(server.URL, nil))

		metrics, err := metricsClient.Get(context.Background(), "orga_1", "app_1", "")
		require.NoError(t, err)
		assert.Empty(t, metrics)
	})
}
