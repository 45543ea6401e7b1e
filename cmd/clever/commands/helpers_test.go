package commands

import (
	"testing"

	"github.com/clevercloud-community/clevercloud-go/pkg/ccapi"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterItems(t *testing.T) {
	zones := []ccapi.Zone{
		{Name: "par", CountryCode: "FR", Tags: []string{"for:applications"}},
		{Name: "mtl", CountryCode: "CA", Tags: []string{"for:applications"}},
		{Name: "rbx", CountryCode: "FR", Tags: nil},
	}

	t.Run("empty expression keeps everything", func(t *testing.T) {
		kept, err := filterItems(zones, "")
		require.NoError(t, err)
		assert.Len(t, kept, 3)
	})

	t.Run("filters on a field", func(t *testing.T) {
		kept, err := filterItems(zones, `countryCode == "FR"`)
		require.NoError(t, err)
		require.Len(t, kept, 2)
		assert.Equal(t, "par", kept[0].Name)
		assert.Equal(t, "rbx", kept[1].Name)
	})

	t.Run("filters on a collection", func(t *testing.T) {
		kept, err := filterItems(zones, `tags != nil && "for:applications" in tags`)
		require.NoError(t, err)
		assert.Len(t, kept, 2)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := filterItems(zones, "countryCode ==")
		require.Error(t, err)
	})

	t.Run("non-boolean expression", func(t *testing.T) {
		_, err := filterItems(zones, "name")
		require.ErrorIs(t, err, ErrFilterNotBoolean)
	})
}

func TestStringOrDefault(t *testing.T) {
	value := "set"

	assert.Equal(t, "set", stringOrDefault(&value))
	assert.Equal(t, NotAvailable, stringOrDefault(nil))
}

func TestResolveOrg(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		org, err := resolveOrg("orga_flag")
		require.NoError(t, err)
		assert.Equal(t, "orga_flag", org)
	})

	t.Run("falls back to config", func(t *testing.T) {
		viper.Set("organisation", "orga_config")
		defer viper.Set("organisation", "")

		org, err := resolveOrg("")
		require.NoError(t, err)
		assert.Equal(t, "orga_config", org)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := resolveOrg("")
		require.ErrorIs(t, err, ErrOrganizationMissing)
	})
}
