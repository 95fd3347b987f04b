package commands

import (
	"context"
	"errors"
	"fmt"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/result"
)

// ErrLabelGeneration marks a failure in the QR or PDF collaborators. By the
// time label generation runs the shipment is already committed, so handlers
// at the boundary must report this as a server-side failure, not reject the
// request: the shipment exists and can be retrieved by its tracking number.
var ErrLabelGeneration = errors.New("label generation failed")

// CreateShipmentResponse carries the outcome of a successful registration.
type CreateShipmentResponse struct {
	TrackingNumber string
	Label          []byte
}

// CreateShipmentCommandHandler handles the business logic for shipment
// registration: it builds the domain value objects from the raw command
// data, persists the new aggregate transactionally, and then produces the
// printable label through the QR and PDF collaborators.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, qr, labels)
//	cmd, _ := NewCreateShipmentCommand(sender, receiver, pack, 1500.50)
//
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment registration failed: %w", err)
//	}
//	// response.Label is the printable PDF for the new shipment
type CreateShipmentCommandHandler struct {
	uowFactory    ShipmentUoWFactory
	qrGenerator   ports.QRGenerator
	labelRenderer ports.LabelRenderer
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a ShipmentUoWFactory for transactional persistence plus the QR and
// label collaborators.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	qrGenerator ports.QRGenerator,
	labelRenderer ports.LabelRenderer,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:    uowFactory,
		qrGenerator:   qrGenerator,
		labelRenderer: labelRenderer,
	}
}

// Handle processes the shipment registration command.
//
// Value objects for both parties and the package are built first and their
// failures aggregated, so one request reports every invalid field at once.
// The aggregate is committed before the label collaborators run: a QR or PDF
// failure is reported as ErrLabelGeneration, but the shipment stays persisted.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (CreateShipmentResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResponse{}, err
	}

	sender := buildContact(cmd.Sender(), "sender")
	receiver := buildContact(cmd.Receiver(), "receiver")
	packData := cmd.Package()
	pack := result.Of(shipment.NewPackageDimensions(
		packData.HeightCm, packData.WidthCm, packData.LengthCm, packData.WeightKg))
	declaredValue := result.Of(shipment.NewDeclaredValue(cmd.DeclaredValue()))

	if err := result.Join(sender, receiver, pack, declaredValue); err != nil {
		return CreateShipmentResponse{}, err
	}

	aggregate, err := shipment.NewShipment(
		sender.Value(), receiver.Value(), pack.Value(), declaredValue.Value())
	if err != nil {
		return CreateShipmentResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateShipmentResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Save(ctx, aggregate); err != nil {
		return CreateShipmentResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResponse{}, err
	}

	label, err := h.generateLabel(aggregate)
	if err != nil {
		return CreateShipmentResponse{}, err
	}

	return CreateShipmentResponse{
		TrackingNumber: aggregate.TrackingNumber().String(),
		Label:          label,
	}, nil
}

func (h *CreateShipmentCommandHandler) generateLabel(aggregate *shipment.Shipment) ([]byte, error) {
	qrPNG, err := h.qrGenerator.Generate(ports.QRPayload{
		TrackingNumber: aggregate.TrackingNumber().String(),
		Status:         aggregate.Status().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: qr code: %w", ErrLabelGeneration, err)
	}

	receiver := aggregate.Receiver()
	address := receiver.Address()
	label, err := h.labelRenderer.Render(ports.LabelData{
		TrackingNumber:   aggregate.TrackingNumber().String(),
		SenderName:       aggregate.Sender().FullName(),
		ReceiverName:     receiver.FullName(),
		ReceiverAddress:  formatAddressLine(address),
		BillableWeightKg: aggregate.BillableWeightKg(),
		DeclaredValue:    aggregate.DeclaredValue().Amount(),
	}, qrPNG)
	if err != nil {
		return nil, fmt.Errorf("%w: pdf: %w", ErrLabelGeneration, err)
	}

	return label, nil
}

// buildContact assembles a Contact value object from raw command data,
// folding the phone, address and id failures into a single result.
func buildContact(data ContactData, role string) result.Result[shipment.Contact] {
	phone := result.Of(shipment.NewPhone(data.Phone))
	address := result.Of(shipment.NewAddress(
		data.Address.Street, data.Address.Number, data.Address.City,
		data.Address.State, data.Address.Country, data.Address.PostalCode,
		data.Address.Municipality, data.Address.Borough,
		data.Address.Neighborhood, data.Address.Subdivision,
	))

	userID := result.Success[*kernel.UUID](nil)
	if data.UserID != "" {
		parsed, err := kernel.UUIDFromString(data.UserID)
		if err != nil {
			userID = result.Failure[*kernel.UUID](errs.NewValueIsInvalidErrorWithCause("userId", err))
		} else {
			userID = result.Success(&parsed)
		}
	}

	if err := result.Join(phone, address, userID); err != nil {
		return result.Failure[shipment.Contact](fmt.Errorf("%s: %w", role, err))
	}

	contact, err := shipment.NewContact(
		data.FirstName, data.LastName, phone.Value(), address.Value(), userID.Value())
	if err != nil {
		return result.Failure[shipment.Contact](fmt.Errorf("%s: %w", role, err))
	}

	return result.Success(contact)
}

func formatAddressLine(address shipment.Address) string {
	line := address.Street() + " " + address.Number() + ", " + address.City()
	if address.PostalCode() != "" {
		line += " " + address.PostalCode()
	}
	if address.Country() != "" {
		line += ", " + address.Country()
	}
	return line
}
