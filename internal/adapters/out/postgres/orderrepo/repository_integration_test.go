package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
		&orderrepo.TrackingEventDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_products, order_tracking_events").Error,
	)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ProductDTO{}, 2)
	// Creation appends the initial PENDING ledger entry.
	suite.assertCount(&orderrepo.TrackingEventDTO{}, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestOrder(7)
	second := suite.createTestOrder(7)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, order.ErrNumberGenerationConflict)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder(2)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Number().String(), retrieved.Number().String())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(1, retrieved.Version())
	suite.Nil(retrieved.DriverID())

	suite.Require().Len(retrieved.Products(), 2)
	suite.Equal("Ceramic mug", retrieved.Products()[0].Name())
	suite.Equal(2, retrieved.Products()[1].Quantity())
	suite.InDelta(120.7, retrieved.Summary().Total(), 0.001)
	suite.Equal("Jane Doe", retrieved.ShippingAddress().Name())

	history := retrieved.History()
	suite.Require().Len(history, 1)
	suite.Equal(1, history[0].Sequence())
	suite.Equal(order.Pending, history[0].Status())

	// A loaded aggregate has no unsaved ledger entries.
	suite.Empty(retrieved.UnsavedTrackingEvents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder(3)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, original.Number())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsLedgerAndBumpsVersion() {
	ctx := context.Background()

	original := suite.createTestOrder(4)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	actor := kernel.NewUUID()
	suite.Require().NoError(loaded.UpdateStatus(order.Processing, actor, "warehouse", "accepted by seller"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, reloaded.Status())
	suite.Equal(2, reloaded.Version())

	history := reloaded.History()
	suite.Require().Len(history, 2)
	// Newest first.
	suite.Equal(2, history[0].Sequence())
	suite.Equal(order.Processing, history[0].Status())
	suite.Equal("warehouse", history[0].Location())
	suite.Require().NotNil(history[0].UpdatedBy())
	suite.Equal(actor, *history[0].UpdatedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModification() {
	ctx := context.Background()

	original := suite.createTestOrder(5)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two copies loaded at the same version.
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	actor := kernel.NewUUID()
	suite.Require().NoError(first.UpdateStatus(order.Processing, actor, "", ""))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel("customer changed mind", actor))
	err = suite.repository.Update(ctx, second)

	var conflictErr *errs.ConcurrentModificationError
	suite.Require().ErrorAs(err, &conflictErr)

	// The stale writer's ledger entry was not persisted.
	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, reloaded.Status())
	suite.Len(reloaded.History(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestOrder(6)
	err := suite.repository.Update(ctx, ghost)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredOrder_PersistsReviewAndPayment() {
	ctx := context.Background()

	original := suite.createTestOrder(8)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	actor := kernel.NewUUID()
	paidAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	suite.Require().NoError(loaded.ConfirmPayment("txn-42", paidAt))
	suite.Require().NoError(loaded.MarkAsDelivered("signature on file", actor))
	suite.Require().NoError(loaded.AddCustomerReview(5, "arrived in one piece"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, reloaded.Status())
	suite.Equal("signature on file", reloaded.ProofOfDelivery())
	suite.NotNil(reloaded.ActualDeliveryDate())
	suite.Equal(order.PaymentStatusPaid, reloaded.Payment().Status())
	suite.Equal("txn-42", reloaded.Payment().TransactionID())

	suite.Require().NotNil(reloaded.CustomerReview())
	suite.Equal(5, reloaded.CustomerReview().Rating())
	suite.Equal("arrived in one piece", reloaded.CustomerReview().Text())
	suite.Nil(reloaded.DriverReview())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOverdue_FiltersByDateAndStatus() {
	ctx := context.Background()

	now := time.Now().UTC()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	overdue := suite.createTestOrderWithEstimate(10, &past)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	onTime := suite.createTestOrderWithEstimate(11, &future)
	suite.Require().NoError(suite.repository.Add(ctx, onTime))

	noEstimate := suite.createTestOrderWithEstimate(12, nil)
	suite.Require().NoError(suite.repository.Add(ctx, noEstimate))

	// Late but already cancelled, so not overdue.
	cancelled := suite.createTestOrderWithEstimate(13, &past)
	suite.Require().NoError(cancelled.Cancel("out of stock", kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	results, err := suite.repository.GetAllOverdue(ctx, now)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(overdue.ID(), results[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending order with two line items; the sequence
// keeps order numbers unique within a test.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(sequence int) *order.Order {
	return suite.createTestOrderWithEstimate(sequence, nil)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithEstimate(
	sequence int, estimatedDeliveryDate *time.Time,
) *order.Order {
	number, err := order.NewOrderNumber(time.Now().UTC(), sequence)
	suite.Require().NoError(err)

	mug, err := order.NewLineItem(kernel.NewUUID(), "Ceramic mug", 50, 1, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	sampler, err := order.NewLineItem(kernel.NewUUID(), "Tea sampler", 25, 2, kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	shipping, err := order.NewAddressSnapshot(
		"Jane Doe", "5 Rose Lane", "Portland", "OR", "97201", "US", "+1-555-0101",
	)
	suite.Require().NoError(err)

	payment, err := order.NewPaymentDetails(order.PaymentMethodCard, order.PaymentStatusPending)
	suite.Require().NoError(err)

	summary, err := order.NewSummary(100, 10, 2, 8.7, 0, 120.7)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		[]order.LineItem{mug, sampler},
		shipping,
		shipping,
		payment,
		summary,
		order.Details{EstimatedDeliveryDate: estimatedDeliveryDate},
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertCount verifies the number of rows behind the given model.
func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
