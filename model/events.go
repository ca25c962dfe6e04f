package model

// Event types published on the registry event bus.
const (
	EventSimpleOrganizationCreated = "organization.simple_created"
)

// SimpleOrganizationCreated is emitted after an organization without testing
// facilities or multiple sites has been provisioned with its default site and
// scannable. Downstream consumers build the onboarding kit from it.
type SimpleOrganizationCreated struct {
	Organization       Organization `json:"organization"`
	DefaultScannableID string       `json:"defaultScannableId"`
}
