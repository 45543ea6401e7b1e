package ccapi_test

import (
	"testing"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/stretchr/testify/assert"
)

func TestVariablesToMap(t *testing.T) {
	t.Parallel()

	variables := []ccapi.Variable{
		{Name: "HOST", Value: "db.example.com"},
		{Name: "PORT", Value: "5432"},
		{Name: "HOST", Value: "replica.example.com"},
	}

	env := ccapi.VariablesToMap(variables)

	assert.Len(t, env, 2)
	// later entries win on duplicates
	assert.Equal(t, "replica.example.com", env["HOST"])
	assert.Equal(t, "5432", env["PORT"])
}

func TestMapToVariables(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"PORT": "5432",
		"HOST": "db.example.com",
		"NAME": "app",
	}

	variables := ccapi.MapToVariables(env)

	// sorted by name for deterministic output
	assert.Equal(t, []ccapi.Variable{
		{Name: "HOST", Value: "db.example.com"},
		{Name: "NAME", Value: "app"},
		{Name: "PORT", Value: "5432"},
	}, variables)
}

func TestMapToVariables_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ccapi.MapToVariables(nil))
	assert.Empty(t, ccapi.VariablesToMap(nil))
}
