package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence
// behavior across the three tables.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ContactDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.MovementDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, contacts, movements").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_NewShipment_PersistsAllRows() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Save(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertRowCount("shipments", 1)
	suite.assertRowCount("contacts", 2)
	suite.assertRowCount("movements", 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_InvalidShipment_Rejected() {
	ctx := context.Background()

	err := suite.repository.Save(ctx, &shipment.Shipment{})

	suite.Require().Error(err)
	suite.ErrorIs(err, shipment.ErrShipmentIsNotConstructed)
	suite.assertRowCount("shipments", 0)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, aggregate))

	restored, err := suite.repository.GetByTrackingNumber(ctx, aggregate.TrackingNumber())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(aggregate))
	suite.True(restored.TrackingNumber().IsEqual(aggregate.TrackingNumber()))
	suite.Equal(aggregate.Status(), restored.Status())
	suite.Equal(aggregate.Sender().FullName(), restored.Sender().FullName())
	suite.Equal(aggregate.Sender().Phone().String(), restored.Sender().Phone().String())
	suite.Equal(aggregate.Receiver().Address().Municipality(), restored.Receiver().Address().Municipality())
	suite.InDelta(aggregate.Package().WeightKg(), restored.Package().WeightKg(), 1e-9)
	suite.InDelta(aggregate.DeclaredValue().Amount(), restored.DeclaredValue().Amount(), 1e-9)
	suite.WithinDuration(aggregate.CreatedAt(), restored.CreatedAt(), time.Millisecond)
	suite.Nil(restored.LastMovement())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_NotFound() {
	ctx := context.Background()
	trackingNumber, err := shipment.TrackingNumberFromString("NOSUCHNUMBER")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByTrackingNumber(ctx, trackingNumber)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_WithMovement_AppendsToLog() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, aggregate))

	moved, err := aggregate.RecordMovement("BR-001", "RT-0042", "InTransit", "Mexico City hub")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, moved))

	suite.assertRowCount("shipments", 1)
	suite.assertRowCount("movements", 1)

	restored, err := suite.repository.GetByTrackingNumber(ctx, aggregate.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, restored.Status())
	suite.Require().NotNil(restored.LastMovement())
	suite.Equal("BR-001", restored.LastMovement().BranchID())
	suite.Equal("Mexico City hub", restored.LastMovement().Location())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_SecondMovement_HydratesLatestOnly() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, aggregate))

	first, err := aggregate.RecordMovement("BR-001", "", "PickedUp", "Origin branch")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, first))

	time.Sleep(5 * time.Millisecond) // occurred_at must differ

	second, err := first.RecordMovement("BR-002", "RT-0042", "Delivered", "Receiver address")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, second))

	suite.assertRowCount("movements", 2)

	restored, err := suite.repository.GetByTrackingNumber(ctx, aggregate.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, restored.Status())
	suite.Require().NotNil(restored.LastMovement())
	suite.Equal("BR-002", restored.LastMovement().BranchID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_ResavingMovement_DoesNotDuplicate() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	moved, err := aggregate.RecordMovement("BR-001", "", "InTransit", "Mexico City hub")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, moved))
	suite.Require().NoError(suite.repository.Save(ctx, moved))

	suite.assertRowCount("movements", 1)
	suite.assertRowCount("shipments", 1)
	suite.assertRowCount("contacts", 2)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_InsideRolledBackTransaction_LeavesTablesEmpty() {
	ctx := context.Background()
	aggregate := suite.createTestShipment()

	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	txRepo := shipmentrepo.NewGormShipmentRepository(tx, tracker)

	suite.Require().NoError(txRepo.Save(ctx, aggregate))
	suite.Require().NoError(tx.Rollback().Error)

	suite.assertRowCount("shipments", 0)
	suite.assertRowCount("contacts", 0)
	suite.assertRowCount("movements", 0)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	phone, err := shipment.NewPhone("+52 55 1234 5678")
	suite.Require().NoError(err)

	address, err := shipment.NewAddress(
		"Av. Insurgentes Sur", "1602", "Mexico City", "CDMX", "MX", "03940",
		"Benito Juarez", "", "Del Valle", "")
	suite.Require().NoError(err)

	userID := kernel.NewUUID()
	sender, err := shipment.NewContact("Maria", "Lopez", phone, address, &userID)
	suite.Require().NoError(err)

	receiver, err := shipment.NewContact("Juan", "Perez", phone, address, nil)
	suite.Require().NoError(err)

	pack, err := shipment.NewPackageDimensions(30, 20, 10, 2.5)
	suite.Require().NoError(err)

	declaredValue, err := shipment.NewDeclaredValue(1500.50)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(sender, receiver, pack, declaredValue)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
