package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker without recording anything;
// query tests only use the repository for seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, interface{}) {}

// GetOrderQueryHandlerTestSuite covers the single-order, tracking ledger,
// customer history, and search read models against a real database.
type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	sequence  int
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
		&orderrepo.TrackingEventDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_products, order_tracking_events").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ByID_ReturnsFullReadModel() {
	seeded := suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "leave at the door")

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	response, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), response.ID)
	suite.Equal(seeded.Number().String(), response.OrderNumber)
	suite.Equal(seeded.CustomerID(), response.CustomerID)
	suite.Equal("PENDING", response.Status)
	suite.Equal("CARD", response.PaymentMethod)
	suite.Equal("PENDING", response.PaymentStatus)
	suite.Equal("leave at the door", response.Notes)
	suite.InDelta(120.7, response.Total, 0.001)
	suite.Equal(1, response.Version)

	suite.Require().Len(response.Products, 2)
	suite.Equal("Ceramic mug", response.Products[0].Name)
	suite.Equal(1, response.Products[0].Quantity)
	suite.Equal("Tea sampler", response.Products[1].Name)

	suite.Equal("Jane Doe", response.ShippingAddress.Name)
	suite.Equal("Portland", response.ShippingAddress.City)
	suite.Nil(response.CustomerReview)
	suite.Nil(response.DriverID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ByNumber_ReturnsOrder() {
	seeded := suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "")

	query, err := queries.NewGetOrderQueryByNumber(seeded.Number())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	response, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), response.ID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestTrackingHistory_NewestFirst() {
	seeded := suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "")

	ctx := context.Background()
	loaded, err := suite.orderRepo.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	actor := kernel.NewUUID()
	suite.Require().NoError(loaded.UpdateStatus(order.Processing, actor, "warehouse", "accepted"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, loaded))

	query, err := queries.NewGetTrackingHistoryQuery(seeded.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db)
	entries, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(entries, 2)
	suite.Equal(2, entries[0].Sequence)
	suite.Equal("PROCESSING", entries[0].Status)
	suite.Equal("warehouse", entries[0].Location)
	suite.Require().NotNil(entries[0].UpdatedBy)
	suite.Equal(actor, *entries[0].UpdatedBy)
	suite.Equal(1, entries[1].Sequence)
	suite.Equal("PENDING", entries[1].Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestTrackingHistory_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetTrackingHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestCustomerOrders_FiltersByCustomerAndStatus() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	first := suite.seedOrder(customerID, "Ceramic mug", "")
	second := suite.seedOrder(customerID, "Walnut board", "")
	suite.seedOrder(kernel.NewUUID(), "Other customer item", "")

	// Cancel the second order so the status filter has something to separate.
	loaded, err := suite.orderRepo.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel("changed mind", kernel.NewUUID()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, loaded))

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)

	query, err := queries.NewGetCustomerOrdersQuery(customerID, nil)
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	cancelled := int(order.Cancelled)
	query, err = queries.NewGetCustomerOrdersQuery(customerID, &cancelled)
	suite.Require().NoError(err)
	filtered, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(second.ID(), filtered[0].ID)
	suite.NotEqual(first.ID(), filtered[0].ID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestSearchOrders_MatchesNumberProductAndNotes() {
	ctx := context.Background()

	byProduct := suite.seedOrder(kernel.NewUUID(), "Walnut cutting board", "")
	byNotes := suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "gift wrap the walnut please")
	unrelated := suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "")

	handler := queries.NewSearchOrdersQueryHandler(suite.db)

	query, err := queries.NewSearchOrdersQuery("walnut")
	suite.Require().NoError(err)
	results, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	found := make(map[kernel.UUID]bool)
	for _, r := range results {
		found[r.ID] = true
	}
	suite.True(found[byProduct.ID()])
	suite.True(found[byNotes.ID()])
	suite.False(found[unrelated.ID()])

	// Exact order number lookup also goes through search.
	query, err = queries.NewSearchOrdersQuery(byProduct.Number().String())
	suite.Require().NoError(err)
	results, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(byProduct.ID(), results[0].ID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestSearchOrders_NoMatches_ReturnsEmptySlice() {
	suite.seedOrder(kernel.NewUUID(), "Ceramic mug", "")

	query, err := queries.NewSearchOrdersQuery("nonexistent")
	suite.Require().NoError(err)

	handler := queries.NewSearchOrdersQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(results)
}

// seedOrder persists a pending two-item order for the given customer. The
// first product name and the notes are caller-controlled for search tests.
func (suite *GetOrderQueryHandlerTestSuite) seedOrder(
	customerID kernel.UUID, productName, notes string,
) *order.Order {
	suite.sequence++

	number, err := order.NewOrderNumber(time.Now().UTC(), suite.sequence)
	suite.Require().NoError(err)

	first, err := order.NewLineItem(kernel.NewUUID(), productName, 50, 1, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Tea sampler", 25, 2, kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	snapshot, err := order.NewAddressSnapshot(
		"Jane Doe", "5 Rose Lane", "Portland", "OR", "97201", "US", "+1-555-0101",
	)
	suite.Require().NoError(err)

	payment, err := order.NewPaymentDetails(order.PaymentMethodCard, order.PaymentStatusPending)
	suite.Require().NoError(err)

	summary, err := order.NewSummary(100, 10, 2, 8.7, 0, 120.7)
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(
		kernel.NewUUID(), number, customerID,
		[]order.LineItem{first, second},
		snapshot, snapshot, payment, summary,
		order.Details{Notes: notes},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
