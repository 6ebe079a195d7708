package queries

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves aggregate order statistics for a reporting
// window.
type GetOrderStatsQuery struct {
	period Period

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a statistics query for the given period.
func NewGetOrderStatsQuery(period Period) (GetOrderStatsQuery, error) {
	if err := period.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Period returns the reporting window.
func (q GetOrderStatsQuery) Period() Period { return q.period }

// GetOrderStatsQueryResponse is the aggregate view over orders in a period.
// Revenue sums the total of every order in the window; delivery and
// cancellation rates are percentages of the total order count and zero when
// the period holds no orders.
type GetOrderStatsQueryResponse struct {
	Period               string
	TotalOrders          int
	PendingOrders        int
	ProcessingOrders     int
	OutForDeliveryOrders int
	DeliveredOrders      int
	CancelledOrders      int
	RefundedOrders       int
	TotalRevenue         float64
	AverageOrderValue    float64
	DeliveryRate         float64
	CancellationRate     float64
	GeneratedAt          time.Time
}

// StatsCache is a short-TTL read-through cache in front of the statistics
// aggregate query. Lookups are best effort: a miss or a cache failure falls
// through to the database, and writes never fail the query.
type StatsCache interface {
	Get(ctx context.Context, period Period) (GetOrderStatsQueryResponse, bool)
	Set(ctx context.Context, period Period, response GetOrderStatsQueryResponse)
}
