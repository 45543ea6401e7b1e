package clevercloud_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/clevercloud-community/clevercloud-go/pkg/clevercloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := clevercloud.New(context.Background(), nil)
		require.ErrorIs(t, err, ccapi.ErrConfigRequired)
	})

	t.Run("defaults to the public endpoint", func(t *testing.T) {
		t.Parallel()

		config := &ccapi.Config{}

		_, err := clevercloud.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, ccapi.PublicEndpoint, config.Endpoint)
	})

	t.Run("normalizes the endpoint", func(t *testing.T) {
		t.Parallel()

		config := &ccapi.Config{Endpoint: "api.example.com/"}

		_, err := clevercloud.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.Endpoint)
	})

	t.Run("incomplete credentials", func(t *testing.T) {
		t.Parallel()

		_, err := clevercloud.New(context.Background(), &ccapi.Config{
			ConsumerKey: "key",
			Token:       "token",
		})
		require.ErrorIs(t, err, ccapi.ErrIncompleteCredentials)
	})

	t.Run("end to end against a test server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/self", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(ccapi.Self{ID: "user_1", Email: "jane@example.com"})
		}))
		defer server.Close()

		client, err := clevercloud.New(context.Background(), &ccapi.Config{Endpoint: server.URL})
		require.NoError(t, err)

		self, err := client.Self().Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "user_1", self.ID)
	})
}
