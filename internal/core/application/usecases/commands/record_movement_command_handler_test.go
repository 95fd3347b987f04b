package commands_test

import (
	"errors"
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	phone, err := shipment.NewPhone("+52 55 1234 5678")
	require.NoError(t, err)
	address, err := shipment.NewAddress(
		"Av. Insurgentes Sur", "1602", "Mexico City", "CDMX", "MX", "03940",
		"Benito Juarez", "", "Del Valle", "")
	require.NoError(t, err)
	sender, err := shipment.NewContact("Maria", "Lopez", phone, address, nil)
	require.NoError(t, err)
	receiver, err := shipment.NewContact("Juan", "Perez", phone, address, nil)
	require.NoError(t, err)
	pack, err := shipment.NewPackageDimensions(30, 20, 10, 2.5)
	require.NoError(t, err)
	declaredValue, err := shipment.NewDeclaredValue(1500.50)
	require.NoError(t, err)

	aggregate, err := shipment.NewShipment(sender, receiver, pack, declaredValue)
	require.NoError(t, err)
	return aggregate
}

func TestRecordMovementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t)
	cmd, err := commands.NewRecordMovementCommand(
		stored.TrackingNumber().String(), "BR-001", "RT-0042", "InTransit", "Mexico City hub")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, stored.TrackingNumber()).Return(stored, nil).Once(),
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s *shipment.Shipment) bool {
			return s.Status() == shipment.InTransit && s.LastMovement() != nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordMovementCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordMovementCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordMovementCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewRecordMovementCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRecordMovementCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordMovementCommand(
		"MISSING", "BR-001", "", "InTransit", "Mexico City hub")
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("trackingNumber", "MISSING")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, mock.AnythingOfType("shipment.TrackingNumber")).
			Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordMovementCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordMovementCommandHandler_Handle_UnknownStatus(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t)
	cmd, err := commands.NewRecordMovementCommand(
		stored.TrackingNumber().String(), "BR-001", "", "Teleported", "Mexico City hub")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, stored.TrackingNumber()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordMovementCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordMovementCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t)
	cmd, err := commands.NewRecordMovementCommand(
		stored.TrackingNumber().String(), "BR-001", "", "Delivered", "Receiver address")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, stored.TrackingNumber()).Return(stored, nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordMovementCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
