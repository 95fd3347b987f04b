package http

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type addressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	Municipality string `json:"municipality"`
	Borough      string `json:"borough"`
	Neighborhood string `json:"neighborhood"`
	Subdivision  string `json:"subdivision"`
}

type contactRequest struct {
	FirstName string         `json:"first_name" validate:"required"`
	LastName  string         `json:"last_name"  validate:"required"`
	Phone     string         `json:"phone"      validate:"required"`
	UserID    string         `json:"user_id"`
	Address   addressRequest `json:"address"    validate:"required"`
}

type packageRequest struct {
	HeightCm float64 `json:"height_cm"`
	WidthCm  float64 `json:"width_cm"`
	LengthCm float64 `json:"length_cm"`
	WeightKg float64 `json:"weight_kg"`
}

type createShipmentRequest struct {
	Sender        contactRequest `json:"sender"         validate:"required"`
	Receiver      contactRequest `json:"receiver"       validate:"required"`
	Package       packageRequest `json:"package"        validate:"required"`
	DeclaredValue float64        `json:"declared_value"`
}

type createShipmentResponse struct {
	TrackingNumber string `json:"tracking_number"`
	LabelPDF       []byte `json:"label_pdf"`
}

type recordMovementRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
	RouteID  string `json:"route_id"`
	Status   string `json:"status"    validate:"required"`
	Location string `json:"location"  validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from the query read models so the JSON contract is not coupled to
// internal changes.

type movementResponse struct {
	BranchID   string    `json:"branch_id"`
	RouteID    string    `json:"route_id,omitempty"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	OccurredAt time.Time `json:"occurred_at"`
}

type shipmentResponse struct {
	TrackingNumber      string            `json:"tracking_number"`
	Status              string            `json:"status"`
	SenderName          string            `json:"sender_name"`
	ReceiverName        string            `json:"receiver_name"`
	HeightCm            float64           `json:"height_cm"`
	WidthCm             float64           `json:"width_cm"`
	LengthCm            float64           `json:"length_cm"`
	WeightKg            float64           `json:"weight_kg"`
	DeclaredValue       float64           `json:"declared_value"`
	CreatedAt           time.Time         `json:"created_at"`
	EstimatedDeliveryAt time.Time         `json:"estimated_delivery_at"`
	LastMovement        *movementResponse `json:"last_movement,omitempty"`
}
