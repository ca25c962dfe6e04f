// util/qr_service.go

package util

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRService renders scan-point QR codes. The encoded content is the public
// tracing URL for a scannable; devices hitting that URL post a check-in.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{baseURL: baseURL}
}

// GeneratePNG renders the QR code for a scannable as a PNG image.
func (q *QRService) GeneratePNG(scannableID string) ([]byte, error) {
	png, err := qrcode.Encode(q.baseURL+scannableID, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code for scannable %s: %w", scannableID, err)
	}
	return png, nil
}
