package commands

import (
	"errors"

	"shipments/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// AddressData carries the raw address fields of a shipment party. Exactly one
// of Municipality/Borough and exactly one of Neighborhood/Subdivision must be
// set; the value object enforces this during handling.
type AddressData struct {
	Street       string
	Number       string
	City         string
	State        string
	Country      string
	PostalCode   string
	Municipality string
	Borough      string
	Neighborhood string
	Subdivision  string
}

// ContactData carries the raw fields of a shipment party. UserID optionally
// references a back-office account by its UUID string.
type ContactData struct {
	FirstName string
	LastName  string
	Phone     string
	UserID    string
	Address   AddressData
}

// PackageData carries the raw package measurements.
type PackageData struct {
	HeightCm float64
	WidthCm  float64
	LengthCm float64
	WeightKg float64
}

// CreateShipmentCommand represents a request to register a new shipment.
// Fields are carried raw; validation happens when the handler constructs the
// domain value objects, so that all field failures are reported together.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(sender, receiver, pack, 1500.50)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, qr, labels)
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s registered", response.TrackingNumber)
type CreateShipmentCommand struct {
	sender        ContactData
	receiver      ContactData
	pack          PackageData
	declaredValue float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
func NewCreateShipmentCommand(
	sender, receiver ContactData,
	pack PackageData,
	declaredValue float64,
) (CreateShipmentCommand, error) {
	return CreateShipmentCommand{
		sender:        sender,
		receiver:      receiver,
		pack:          pack,
		declaredValue: declaredValue,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Sender returns the sending party's raw data.
func (c CreateShipmentCommand) Sender() ContactData {
	return c.sender
}

// Receiver returns the receiving party's raw data.
func (c CreateShipmentCommand) Receiver() ContactData {
	return c.receiver
}

// Package returns the raw package measurements.
func (c CreateShipmentCommand) Package() PackageData {
	return c.pack
}

// DeclaredValue returns the declared monetary value.
func (c CreateShipmentCommand) DeclaredValue() float64 {
	return c.declaredValue
}
