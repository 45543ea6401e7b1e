package ccapi

import "github.com/google/uuid"

// Zone tags used to classify deployment zones.
const (
	ZoneTagApplications = "for:applications"
	ZoneTagHDS          = "certification:hds"
)

// Zone represents a deployment zone served by the v4 products namespace.
type Zone struct {
	ID          uuid.UUID `json:"id"          yaml:"id"`
	City        string    `json:"city"        yaml:"city"`
	Country     string    `json:"country"     yaml:"country"`
	Name        string    `json:"name"        yaml:"name"`
	CountryCode string    `json:"countryCode" yaml:"countryCode"`
	Latitude    float64   `json:"lat"         yaml:"lat"`
	Longitude   float64   `json:"lon"         yaml:"lon"`
	Tags        []string  `json:"tags"        yaml:"tags"`
}

// HasTag reports whether the zone carries the given tag.
func (z Zone) HasTag(tag string) bool {
	for _, t := range z.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
