package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMAC512Signer_Name(t *testing.T) {
	t.Parallel()

	signer := &auth.HMAC512Signer{ConsumerSecret: "secret"}
	assert.Equal(t, "HMAC-SHA512", signer.Name())
}

func TestHMAC512Signer_Sign(t *testing.T) {
	t.Parallel()

	signer := &auth.HMAC512Signer{ConsumerSecret: "consumer-secret"}

	signature, err := signer.Sign("token-secret", "GET&https%3A%2F%2Fapi.example.com%2Fv2%2Fself&")
	require.NoError(t, err)
	assert.NotEmpty(t, signature)

	// deterministic for identical inputs
	again, err := signer.Sign("token-secret", "GET&https%3A%2F%2Fapi.example.com%2Fv2%2Fself&")
	require.NoError(t, err)
	assert.Equal(t, signature, again)

	// different key gives a different signature
	other, err := (&auth.HMAC512Signer{ConsumerSecret: "other-secret"}).
		Sign("token-secret", "GET&https%3A%2F%2Fapi.example.com%2Fv2%2Fself&")
	require.NoError(t, err)
	assert.NotEqual(t, signature, other)
}

func TestNewHTTPClient_SignsRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorization := request.Header.Get("Authorization")

		assert.Contains(t, authorization, "OAuth")
		assert.Contains(t, authorization, `oauth_consumer_key="consumer-key"`)
		assert.Contains(t, authorization, `oauth_token="token"`)
		assert.Contains(t, authorization, `oauth_signature_method="HMAC-SHA512"`)
		assert.Contains(t, authorization, "oauth_signature=")

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := auth.NewHTTPClient(context.Background(),
		"consumer-key", "consumer-secret", "token", "secret")

	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
