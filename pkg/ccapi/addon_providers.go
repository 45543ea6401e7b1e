package ccapi

import (
	"fmt"
	"strings"
)

// AddonProviderID identifies an addon provider.
type AddonProviderID string

// Known addon provider identifiers.
const (
	AddonProviderPostgreSQL     AddonProviderID = "postgresql-addon"
	AddonProviderMySQL          AddonProviderID = "mysql-addon"
	AddonProviderRedis          AddonProviderID = "redis-addon"
	AddonProviderMongoDB        AddonProviderID = "mongodb-addon"
	AddonProviderElasticsearch  AddonProviderID = "es-addon"
	AddonProviderPulsar         AddonProviderID = "addon-pulsar"
	AddonProviderConfigProvider AddonProviderID = "config-provider"
)

// ConfigProviderPlanID is the unique plan of the config-provider addon, which
// is hard-coded upstream because the addon is free to use.
const ConfigProviderPlanID = "plan_5d8e9596-dd73-4b73-84d9-e165372c5324"

// ParseAddonProviderID parses a provider identifier, accepting the wire
// identifiers case-insensitively.
func ParseAddonProviderID(s string) (AddonProviderID, error) {
	for _, id := range []AddonProviderID{
		AddonProviderPostgreSQL,
		AddonProviderMySQL,
		AddonProviderRedis,
		AddonProviderMongoDB,
		AddonProviderElasticsearch,
		AddonProviderPulsar,
		AddonProviderConfigProvider,
	} {
		if strings.EqualFold(s, string(id)) {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to parse addon provider identifier %q, available options are "+
		"'postgresql-addon', 'mysql-addon', 'redis-addon', 'mongodb-addon', 'es-addon', "+
		"'addon-pulsar' or 'config-provider'", s)
}

func (id AddonProviderID) String() string {
	return string(id)
}

// AddonProviderInfo describes an addon provider as listed by the v2 products
// catalog. Plans is only populated on catalog responses; some providers
// legitimately have none.
type AddonProviderInfo struct {
	ID               string      `json:"id"              yaml:"id"`
	Name             string      `json:"name"            yaml:"name"`
	Website          string      `json:"website"         yaml:"website"`
	SupportEmail     string      `json:"supportEmail"    yaml:"supportEmail"`
	GooglePlusName   string      `json:"googlePlusName"  yaml:"googlePlusName"`
	TwitterName      string      `json:"twitterName"     yaml:"twitterName"`
	AnalyticsID      string      `json:"analyticsId"     yaml:"analyticsId"`
	ShortDescription string      `json:"shortDesc"       yaml:"shortDesc"`
	LongDescription  string      `json:"longDesc"        yaml:"longDesc"`
	LogoURL          string      `json:"logoUrl"         yaml:"logoUrl"`
	Status           string      `json:"status"          yaml:"status"`
	OpenInNewTab     bool        `json:"openInNewTab"    yaml:"openInNewTab"`
	CanUpgrade       bool        `json:"canUpgrade"      yaml:"canUpgrade"`
	Regions          []string    `json:"regions"         yaml:"regions"`
	Plans            []AddonPlan `json:"plans,omitempty" yaml:"plans,omitempty"`
}

// ClusterFeature is a feature toggle reported for a shared cluster or a
// dedicated version.
type ClusterFeature struct {
	Name    string `json:"name"    yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Cluster describes a shared cluster of an addon provider.
type Cluster struct {
	ID       string           `json:"id"       yaml:"id"`
	Label    string           `json:"label"    yaml:"label"`
	Zone     string           `json:"zone"     yaml:"zone"`
	Version  string           `json:"version"  yaml:"version"`
	Features []ClusterFeature `json:"features" yaml:"features"`
}

// ProviderClusters is the v4 view of an addon provider: its shared clusters
// and the feature matrix of dedicated versions.
type ProviderClusters struct {
	ProviderID     AddonProviderID             `json:"providerId"              yaml:"providerId"`
	Clusters       []Cluster                   `json:"clusters"                yaml:"clusters"`
	Dedicated      map[string][]ClusterFeature `json:"dedicated"               yaml:"dedicated"`
	DefaultVersion string                      `json:"defaultDedicatedVersion" yaml:"defaultDedicatedVersion"`
}
