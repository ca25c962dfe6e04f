// model/neo4j/relationships.go
package registry_neo4j

// Relationship Types
const (
	// RelOwns links User->Device, Organization->Site and Site->Scannable
	RelOwns = "OWNS"

	// RelScan links a scanning Device to the Scannable or Device it scanned
	RelScan = "SCAN"

	// RelReported links the reporting vertex to a TestResult or Symptoms vertex
	RelReported = "REPORTED"

	// RelFor links a TestResult back to the tested Device
	RelFor = "FOR"

	// RelReportFor links a Symptoms report back to the tested Device
	RelReportFor = "REPORT_FOR"
)
