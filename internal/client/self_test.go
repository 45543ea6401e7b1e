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

func TestSelfClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the current user", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/self", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			_ = json.NewEncoder(writer).Encode(ccapi.Self{
				ID:             "user_8a46",
				Email:          "jane@example.com",
				Name:           "Jane",
				Lang:           "en",
				EmailValidated: true,
			})
		}))
		defer server.Close()

		selfClient := client.NewSelfClient(cchttp.NewClient(server.URL, nil))

		self, err := selfClient.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "user_8a46", self.ID)
		assert.Equal(t, "jane@example.com", self.Email)
		assert.True(t, self.EmailValidated)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(ccapi.APIError{ID: 2001, Message: "invalid signature", Kind: "error"})
		}))
		defer server.Close()

		selfClient := client.NewSelfClient(cchttp.NewClient(server.URL, nil))

		_, err := selfClient.Get(context.Background())
		require.Error(t, err)
		assert.True(t, ccapi.IsUnauthorized(err))
	})
}
