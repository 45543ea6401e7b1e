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

func TestOrganizationsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/organisations", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]ccapi.Organization{
			{ID: "orga_1", Name: "ACME", City: "Nantes", Country: "France"},
			{ID: "orga_2", Name: "Sidecar", City: "Lyon", Country: "France"},
		})
	}))
	defer server.Close()

	orgsClient := client.NewOrganizationsClient(cchttp.NewClient(server.URL, nil))

	orgs, err := orgsClient.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "ACME", orgs[0].Name)
}

func TestOrganizationsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/organisations/orga_1", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(ccapi.Organization{ID: "orga_1", Name: "ACME"})
	}))
	defer server.Close()

	orgsClient := client.NewOrganizationsClient(cchttp.NewClient(server.URL, nil))

	org, err := orgsClient.Get(context.Background(), "orga_1")
	require.NoError(t, err)
	assert.Equal(t, "ACME", org.Name)
}
