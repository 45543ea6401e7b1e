package ccapi

// Addon represents a provisioned addon of an organisation.
type Addon struct {
	ID           string            `json:"id"           yaml:"id"`
	Name         *string           `json:"name"         yaml:"name"`
	RealID       string            `json:"realId"       yaml:"realId"`
	Region       string            `json:"region"       yaml:"region"`
	Provider     AddonProviderInfo `json:"provider"     yaml:"provider"`
	Plan         AddonPlan         `json:"plan"         yaml:"plan"`
	CreationDate int64             `json:"creationDate" yaml:"creationDate"`
	ConfigKeys   []string          `json:"configKeys"   yaml:"configKeys"`
}

// AddonPlan represents a billing plan of an addon provider.
type AddonPlan struct {
	ID       string         `json:"id"       yaml:"id"`
	Name     string         `json:"name"     yaml:"name"`
	Slug     string         `json:"slug"     yaml:"slug"`
	Price    float64        `json:"price"    yaml:"price"`
	PriceID  string         `json:"price_id" yaml:"price_id"`
	Features []AddonFeature `json:"features" yaml:"features"`
	Zones    []string       `json:"zones"    yaml:"zones"`
}

// AddonFeature describes a single feature line of a plan.
type AddonFeature struct {
	Name            string  `json:"name"             yaml:"name"`
	Kind            string  `json:"type"             yaml:"type"`
	Value           string  `json:"value"            yaml:"value"`
	ComputableValue *string `json:"computable_value" yaml:"computable_value"`
	NameCode        *string `json:"name_code"        yaml:"name_code"`
}

// AddonOptions carries provider-specific provisioning options.
type AddonOptions struct {
	Version    string `json:"version,omitempty"    yaml:"version,omitempty"`
	Encryption string `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	Services   string `json:"services,omitempty"   yaml:"services,omitempty"`
}

// AddonCreateOptions is the payload for provisioning a new addon.
type AddonCreateOptions struct {
	Name       string          `json:"name"              yaml:"name"`
	Region     string          `json:"region"            yaml:"region"`
	ProviderID AddonProviderID `json:"providerId"        yaml:"providerId"`
	Plan       string          `json:"plan"              yaml:"plan"`
	Options    *AddonOptions   `json:"options,omitempty" yaml:"options,omitempty"`
}
