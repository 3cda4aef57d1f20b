package models

// Client represents a registered or auto-provisioned end user, keyed by email.
// UserID exists in the stored schema but is never assigned by any operation;
// it serializes as null.
type Client struct {
	UserID *int64 `bson:"user_id,omitempty" json:"user_id"`
	Email  string `bson:"email" json:"email"`
	Name   string `bson:"name" json:"name"`
	IsNew  bool   `bson:"isNew" json:"isNew"`
}

// ProvisionedName is the display name given to clients created implicitly
// by a company-info lookup.
const ProvisionedName = "New User"

// CompanyInfo is the static payload returned by the company-info endpoint.
type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contacts    string `json:"contacts"`
}

// DefaultCompanyInfo returns the placeholder company details. The values are
// fixed regardless of which client asks.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:        "Company name",
		Description: "Company description",
		Contacts:    "Contact information",
	}
}
