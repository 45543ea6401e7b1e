package ccapi

// Self represents the currently authenticated user, as served by the v2
// "/self" endpoint.
type Self struct {
	ID             string   `json:"id"             yaml:"id"`
	Email          string   `json:"email"          yaml:"email"`
	Name           string   `json:"name"           yaml:"name"`
	Phone          string   `json:"phone"          yaml:"phone"`
	Address        string   `json:"address"        yaml:"address"`
	City           string   `json:"city"           yaml:"city"`
	Zipcode        string   `json:"zipcode"        yaml:"zipcode"`
	Country        string   `json:"country"        yaml:"country"`
	Avatar         string   `json:"avatar"         yaml:"avatar"`
	CreationDate   int64    `json:"creationDate"   yaml:"creationDate"`
	Lang           string   `json:"lang"           yaml:"lang"`
	EmailValidated bool     `json:"emailValidated" yaml:"emailValidated"`
	OAuthApps      []string `json:"oauthApps"      yaml:"oauthApps"`
	Admin          bool     `json:"admin"          yaml:"admin"`
	CanPay         bool     `json:"canPay"         yaml:"canPay"`
	PreferredMFA   string   `json:"preferredMFA"   yaml:"preferredMFA"`
	HasPassword    bool     `json:"hasPassword"    yaml:"hasPassword"`
}
