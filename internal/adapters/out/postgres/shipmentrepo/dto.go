// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The aggregate spans three tables: the shipment
// row, one contact row per party, and an append-only movement log.
package shipmentrepo

import (
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Contacts are referenced by id; the tracking number carries a
// unique index because it is the public lookup key.
type ShipmentDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string     `gorm:"uniqueIndex"`
	Status              string     `gorm:"index"`
	SenderID            uuid.UUID  `gorm:"type:uuid"`
	ReceiverID          uuid.UUID  `gorm:"type:uuid"`
	Package             PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	DeclaredValue       float64
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PackageDTO represents the embedded package measurements within the
// shipment table.
type PackageDTO struct {
	HeightCm float64
	WidthCm  float64
	LengthCm float64
	WeightKg float64
}

// ContactDTO represents the database structure for shipment parties. Each
// shipment owns its own sender and receiver rows; contacts are not shared
// or deduplicated across shipments.
type ContactDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	FirstName string
	LastName  string
	Phone     string
	Address   AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for contact entities.
func (ContactDTO) TableName() string {
	return "contacts"
}

// AddressDTO represents the embedded address columns within the contact
// table. Absent fields are stored as empty strings.
type AddressDTO struct {
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

// MovementDTO represents the database structure for tracking events. Rows
// are append-only; the composite index serves the latest-movement lookup.
type MovementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index:idx_movements_shipment_occurred"`
	BranchID   string
	RouteID    string
	Status     string
	Location   string
	OccurredAt time.Time `gorm:"index:idx_movements_shipment_occurred"`
}

// TableName specifies the database table name for movement entities.
func (MovementDTO) TableName() string {
	return "movements"
}

// fromDomain converts a shipment domain aggregate to its database rows.
// The movement DTO is nil until the first movement is recorded.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, ContactDTO, ContactDTO, *MovementDTO) {
	sender := contactFromDomain(aggregate.Sender())
	receiver := contactFromDomain(aggregate.Receiver())

	dto := ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		Status:         aggregate.Status().String(),
		SenderID:       sender.ID,
		ReceiverID:     receiver.ID,
		Package: PackageDTO{
			HeightCm: aggregate.Package().HeightCm(),
			WidthCm:  aggregate.Package().WidthCm(),
			LengthCm: aggregate.Package().LengthCm(),
			WeightKg: aggregate.Package().WeightKg(),
		},
		DeclaredValue:       aggregate.DeclaredValue().Amount(),
		CreatedAt:           aggregate.CreatedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
	}

	var movement *MovementDTO
	if last := aggregate.LastMovement(); last != nil {
		movement = &MovementDTO{
			ID:         last.ID().Bytes(),
			ShipmentID: dto.ID,
			BranchID:   last.BranchID(),
			RouteID:    last.RouteID(),
			Status:     last.Status().String(),
			Location:   last.Location(),
			OccurredAt: last.OccurredAt(),
		}
	}

	return dto, sender, receiver, movement
}

// contactFromDomain converts a contact value object to its database row.
func contactFromDomain(contact shipment.Contact) ContactDTO {
	var userID *uuid.UUID
	if id := contact.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	address := contact.Address()
	return ContactDTO{
		ID:        contact.TechnicalID().Bytes(),
		UserID:    userID,
		FirstName: contact.FirstName(),
		LastName:  contact.LastName(),
		Phone:     contact.Phone().String(),
		Address: AddressDTO{
			Street:       address.Street(),
			Number:       address.Number(),
			City:         address.City(),
			State:        address.State(),
			Country:      address.Country(),
			PostalCode:   address.PostalCode(),
			Municipality: address.Municipality(),
			Borough:      address.Borough(),
			Neighborhood: address.Neighborhood(),
			Subdivision:  address.Subdivision(),
		},
	}
}

// toDomain converts database rows back to a shipment domain aggregate.
// Only the latest movement is hydrated; the full history stays a read-side
// concern. Reconstructs the aggregate using the Restore factories.
func toDomain(dto ShipmentDTO, sender, receiver ContactDTO, movement *MovementDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	senderContact, err := contactToDomain(sender)
	if err != nil {
		return nil, err
	}

	receiverContact, err := contactToDomain(receiver)
	if err != nil {
		return nil, err
	}

	var lastMovement *shipment.Movement
	if movement != nil {
		lastMovement, err = movementToDomain(*movement)
		if err != nil {
			return nil, err
		}
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		shipment.RestoreStatus(dto.Status),
		senderContact,
		receiverContact,
		shipment.RestorePackageDimensions(
			dto.Package.HeightCm, dto.Package.WidthCm, dto.Package.LengthCm, dto.Package.WeightKg),
		shipment.RestoreDeclaredValue(dto.DeclaredValue),
		dto.CreatedAt,
		dto.EstimatedDeliveryAt,
		lastMovement,
	), nil
}

// contactToDomain converts a contact row back to its value object.
func contactToDomain(dto ContactDTO) (shipment.Contact, error) {
	technicalID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.Contact{}, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return shipment.Contact{}, userErr
		}

		userID = &uID
	}

	return shipment.RestoreContact(
		technicalID,
		userID,
		dto.FirstName,
		dto.LastName,
		shipment.RestorePhone(dto.Phone),
		shipment.RestoreAddress(
			dto.Address.Street, dto.Address.Number, dto.Address.City,
			dto.Address.State, dto.Address.Country, dto.Address.PostalCode,
			dto.Address.Municipality, dto.Address.Borough,
			dto.Address.Neighborhood, dto.Address.Subdivision,
		),
	), nil
}

// movementToDomain converts a movement row back to its entity.
func movementToDomain(dto MovementDTO) (*shipment.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreMovement(
		id,
		dto.BranchID,
		dto.RouteID,
		shipment.RestoreStatus(dto.Status),
		dto.Location,
		dto.OccurredAt,
	), nil
}
