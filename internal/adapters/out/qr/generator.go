// Package qr generates the QR code images printed on shipping labels.
package qr

import (
	"encoding/json"
	"fmt"

	"shipments/internal/core/ports"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Generator produces PNG QR codes encoding a shipment's tracking payload as
// JSON, so any scanner app can decode the fields without a proprietary
// format.
type Generator struct{}

// NewGenerator creates a QR code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate encodes the payload into a PNG image.
func (g *Generator) Generate(payload ports.QRPayload) ([]byte, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(content), qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}

	return png, nil
}
