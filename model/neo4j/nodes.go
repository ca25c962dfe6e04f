// model/neo4j/nodes.go
package registry_neo4j

// Node Labels
const (
	// LabelDevice represents a phone or other scanning client
	LabelDevice = "Device"

	// LabelUser represents a person who claimed a device
	LabelUser = "User"

	// LabelOrganization represents a business or institution enrolled in tracing
	LabelOrganization = "Organization"

	// LabelSite represents a physical location owned by an organization
	LabelSite = "Site"

	// LabelScannable represents a scan point (QR code, BT beacon) at a site
	LabelScannable = "Scannable"

	// LabelTestResult represents a self-reported medical test outcome
	LabelTestResult = "TestResult"

	// LabelSymptoms represents a self-reported symptom summary
	LabelSymptoms = "Symptoms"
)
