package client_test

import (
	"context"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/internal/client"
	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(context.Background(), nil)
		require.ErrorIs(t, err, ccapi.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(context.Background(), &ccapi.Config{})
		require.ErrorIs(t, err, ccapi.ErrEndpointRequired)
	})

	t.Run("incomplete credentials", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(context.Background(), &ccapi.Config{
			Endpoint:    "https://api.example.com",
			ConsumerKey: "key-without-the-rest",
		})
		require.ErrorIs(t, err, ccapi.ErrIncompleteCredentials)
	})

	t.Run("unauthenticated client", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(context.Background(), &ccapi.Config{
			Endpoint: "https://api.example.com",
		})
		require.NoError(t, err)

		assert.NotNil(t, apiClient.Self())
		assert.NotNil(t, apiClient.Organizations())
		assert.NotNil(t, apiClient.Applications())
		assert.NotNil(t, apiClient.Addons())
		assert.NotNil(t, apiClient.AddonProviders())
		assert.NotNil(t, apiClient.ConfigProvider())
		assert.NotNil(t, apiClient.Functions())
		assert.NotNil(t, apiClient.Zones())
		assert.NotNil(t, apiClient.Metrics())
	})

	t.Run("authenticated client", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(context.Background(), &ccapi.Config{
			Endpoint:       "https://api.example.com",
			ConsumerKey:    "consumer-key",
			ConsumerSecret: "consumer-secret",
			Token:          "token",
			Secret:         "secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, apiClient.Self())
	})
}
