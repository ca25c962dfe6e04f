package model

// ScanType tags the two kinds of check-in a device can report. The boundary
// decodes it once; dispatch on it is exhaustive.
type ScanType string

const (
	ScanDeviceToDevice    ScanType = "DEVICE_TO_DEVICE"
	ScanDeviceToScannable ScanType = "DEVICE_TO_SCANNABLE"
)
