package ports

// QRPayload carries the tracking fields encoded into a shipment's QR code.
type QRPayload struct {
	TrackingNumber string
	Status         string
	Route          string
	Location       string
}

// QRGenerator produces a QR code image for a shipment label.
type QRGenerator interface {
	// Generate encodes the payload into a PNG image.
	Generate(payload QRPayload) ([]byte, error)
}

// LabelRenderer composes the printable shipping label document.
type LabelRenderer interface {
	// Render produces a PDF document embedding the shipment's tracking
	// details and its QR code image.
	Render(data LabelData, qrPNG []byte) ([]byte, error)
}

// LabelData carries the shipment fields printed on the label.
type LabelData struct {
	TrackingNumber   string
	SenderName       string
	ReceiverName     string
	ReceiverAddress  string
	BillableWeightKg float64
	DeclaredValue    float64
}
