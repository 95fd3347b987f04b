package shipment

import (
	"errors"
	"strings"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when validating a zero-value Contact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"Contact must be created via NewContact")

// Contact identifies one party of a shipment, sender or receiver. The
// technical id is generated at construction and identifies the contact row;
// the optional user id is a back-reference to an account in the wider back
// office, never an ownership link. Contact rows are not deduplicated across
// shipments: each shipment persists its own sender and receiver instances.
type Contact struct { //nolint:recvcheck //using for validation
	technicalID kernel.UUID
	userID      *kernel.UUID
	firstName   string
	lastName    string
	phone       Phone
	address     Address

	guard guard.ConstructorGuard
}

// NewContact creates a validated Contact with a freshly generated technical
// id. First and last name must be non-empty after trimming; phone and
// address must be properly constructed value objects.
func NewContact(firstName, lastName string, phone Phone, address Address, userID *kernel.UUID) (Contact, error) {
	contact := Contact{
		technicalID: kernel.NewUUID(),
		userID:      userID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setFirstName(firstName),
		contact.setLastName(lastName),
		contact.setPhone(phone),
		contact.setAddress(address),
	); err != nil {
		return Contact{}, err
	}

	if userID != nil {
		if err := userID.Validate(); err != nil {
			return Contact{}, err
		}
	}

	return contact, nil
}

// RestoreContact reconstructs a Contact from already-trusted stored data,
// preserving its original technical id. Reserved for the persistence
// mapping layer.
func RestoreContact(
	technicalID kernel.UUID,
	userID *kernel.UUID,
	firstName, lastName string,
	phone Phone,
	address Address,
) Contact {
	return Contact{
		technicalID: technicalID,
		userID:      userID,
		firstName:   firstName,
		lastName:    lastName,
		phone:       phone,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate checks if the Contact was properly constructed.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// TechnicalID returns the generated identifier of the contact row.
func (c Contact) TechnicalID() kernel.UUID { return c.technicalID }

// UserID returns the optional back-reference to a user account, or nil.
func (c Contact) UserID() *kernel.UUID { return c.userID }

// FirstName returns the contact's first name.
func (c Contact) FirstName() string { return c.firstName }

// LastName returns the contact's last name.
func (c Contact) LastName() string { return c.lastName }

// FullName returns "FirstName LastName" for display surfaces.
func (c Contact) FullName() string {
	return c.firstName + " " + c.lastName
}

// Phone returns the contact's phone value object.
func (c Contact) Phone() Phone { return c.phone }

// Address returns the contact's address value object.
func (c Contact) Address() Address { return c.address }

func (c *Contact) setFirstName(firstName string) error {
	trimmed := strings.TrimSpace(firstName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("firstName")
	}

	c.firstName = trimmed
	return nil
}

func (c *Contact) setLastName(lastName string) error {
	trimmed := strings.TrimSpace(lastName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.lastName = trimmed
	return nil
}

func (c *Contact) setPhone(phone Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *Contact) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
