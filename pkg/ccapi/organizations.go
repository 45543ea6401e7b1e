package ccapi

// Organization represents a v2 organisation.
type Organization struct {
	ID               string `json:"id"               yaml:"id"`
	Name             string `json:"name"             yaml:"name"`
	Description      string `json:"description"      yaml:"description"`
	BillingEmail     string `json:"billingEmail"     yaml:"billingEmail"`
	Address          string `json:"address"          yaml:"address"`
	City             string `json:"city"             yaml:"city"`
	Zipcode          string `json:"zipcode"          yaml:"zipcode"`
	Country          string `json:"country"          yaml:"country"`
	Company          string `json:"company"          yaml:"company"`
	VAT              string `json:"VAT"              yaml:"VAT"`
	Avatar           string `json:"avatar"           yaml:"avatar"`
	CanPay           bool   `json:"canPay"           yaml:"canPay"`
	CleverEnterprise bool   `json:"cleverEnterprise" yaml:"cleverEnterprise"`
	EmergencyNumber  string `json:"emergencyNumber"  yaml:"emergencyNumber"`
}
