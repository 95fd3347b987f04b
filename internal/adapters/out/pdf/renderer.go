// Package pdf renders printable shipping label documents.
package pdf

import (
	"bytes"
	"fmt"

	"shipments/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

// Renderer composes a single-page A6 shipping label with the shipment's
// tracking details and its QR code.
type Renderer struct{}

// NewRenderer creates a label renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF document embedding the QR code image.
func (r *Renderer) Render(data ports.LabelData, qrPNG []byte) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A6", "")
	doc.SetMargins(8, 8, 8)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, "SHIPPING LABEL", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, data.TrackingNumber, "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 9)
	writeField(doc, "From", data.SenderName)
	writeField(doc, "To", data.ReceiverName)
	writeField(doc, "Address", data.ReceiverAddress)
	writeField(doc, "Weight", fmt.Sprintf("%.2f kg", data.BillableWeightKg))
	writeField(doc, "Declared value", fmt.Sprintf("%.2f", data.DeclaredValue))
	doc.Ln(2)

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("label-qr", options, bytes.NewReader(qrPNG))
	doc.ImageOptions("label-qr", 35, doc.GetY(), 35, 35, false, options, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render label pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeField(doc *gofpdf.Fpdf, name, value string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(28, 5, name+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.MultiCell(0, 5, value, "", "L", false)
}
