package model

// Location is a WGS84 coordinate pair attached to scan edges and sites.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	Premise            string `json:"premise"`
	Thoroughfare       string `json:"thoroughfare"`
	Locality           string `json:"locality"`
	AdministrativeArea string `json:"administrativeArea"`
	PostalCode         string `json:"postalCode"`
	Country            string `json:"country"`
}

type ContactInfo struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type Organization struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     Address     `json:"address"`
	ContactName string      `json:"contactName"`
	ContactInfo ContactInfo `json:"contactInfo"`
}

// SiteSummary is the (id, name) projection returned by the sites listing.
type SiteSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Site struct {
	OrganizationID string
	Name           string
	Category       string
	Subcategory    string
	Address        *Address
	Latitude       *float64
	Longitude      *float64
	Testing        bool
	Phone          string
	Email          string
	ContactName    string
}

type Scannable struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	ContactInfo ContactInfo `json:"contactInfo"`
}
