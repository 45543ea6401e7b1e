package ccapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("documented error body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"id": 4002, "message": "addon not found", "type": "error"}`)
		apiErr := ccapi.ParseAPIError(404, body)

		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, 4002, apiErr.ID)
		assert.Equal(t, "addon not found", apiErr.Message)
		assert.Equal(t, "error", apiErr.Kind)
		assert.Contains(t, apiErr.Error(), "addon not found")
	})

	t.Run("non-JSON body", func(t *testing.T) {
		t.Parallel()

		apiErr := ccapi.ParseAPIError(502, []byte("Bad Gateway"))

		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		apiErr := ccapi.ParseAPIError(500, nil)

		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "api error, status 500", apiErr.Error())
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := ccapi.ParseAPIError(404, []byte(`{"id": 1, "message": "nope", "type": "error"}`))
	wrapped := fmt.Errorf("getting addon: %w", notFound)

	assert.True(t, ccapi.IsNotFound(wrapped))
	assert.False(t, ccapi.IsUnauthorized(wrapped))
	assert.False(t, ccapi.IsForbidden(wrapped))

	unauthorized := ccapi.ParseAPIError(401, nil)
	assert.True(t, ccapi.IsUnauthorized(unauthorized))

	forbidden := ccapi.ParseAPIError(403, nil)
	assert.True(t, ccapi.IsForbidden(forbidden))

	assert.False(t, ccapi.IsNotFound(errors.New("plain error")))
	assert.False(t, ccapi.IsNotFound(nil))
}

func TestRequestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	reqErr := &ccapi.RequestError{Method: "GET", URL: "https://api.example.com/v2/self", Err: cause}

	require.ErrorIs(t, reqErr, cause)
	assert.Contains(t, reqErr.Error(), "GET")
	assert.Contains(t, reqErr.Error(), "connection refused")
}
