package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes aggregate order statistics with a single
// SQL pass, fronted by a short-TTL cache. Cached responses may trail the
// store slightly, which the statistics surface tolerates.
type GetOrderStatsQueryHandler struct {
	db    *gorm.DB
	cache StatsCache
	now   func() time.Time
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
// The cache may be nil, in which case every query hits the database.
func NewGetOrderStatsQueryHandler(db *gorm.DB, cache StatsCache) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{
		db:    db,
		cache: cache,
		now:   time.Now,
	}
}

// Handle executes the statistics query.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, query.Period()); ok {
			return cached, nil
		}
	}

	response, err := h.aggregate(ctx, query.Period())
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if h.cache != nil {
		h.cache.Set(ctx, query.Period(), response)
	}

	return response, nil
}

func (h GetOrderStatsQueryHandler) aggregate(
	ctx context.Context,
	period Period,
) (GetOrderStatsQueryResponse, error) {
	now := h.now().UTC()

	sql := `
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = @pending) AS pending_orders,
			COUNT(*) FILTER (WHERE status = @processing) AS processing_orders,
			COUNT(*) FILTER (WHERE status = @out_for_delivery) AS out_for_delivery_orders,
			COUNT(*) FILTER (WHERE status = @delivered) AS delivered_orders,
			COUNT(*) FILTER (WHERE status = @cancelled) AS cancelled_orders,
			COUNT(*) FILTER (WHERE status = @refunded) AS refunded_orders,
			COALESCE(SUM(total), 0) AS total_revenue
		FROM orders`

	params := map[string]any{
		"pending":          int(order.Pending),
		"processing":       int(order.Processing),
		"out_for_delivery": int(order.OutForDelivery),
		"delivered":        int(order.Delivered),
		"cancelled":        int(order.Cancelled),
		"refunded":         int(order.Refunded),
	}

	if bound := period.LowerBound(now); bound != nil {
		sql += ` WHERE created_at >= @lower_bound`
		params["lower_bound"] = *bound
	}

	var row struct {
		TotalOrders          int     `gorm:"column:total_orders"`
		PendingOrders        int     `gorm:"column:pending_orders"`
		ProcessingOrders     int     `gorm:"column:processing_orders"`
		OutForDeliveryOrders int     `gorm:"column:out_for_delivery_orders"`
		DeliveredOrders      int     `gorm:"column:delivered_orders"`
		CancelledOrders      int     `gorm:"column:cancelled_orders"`
		RefundedOrders       int     `gorm:"column:refunded_orders"`
		TotalRevenue         float64 `gorm:"column:total_revenue"`
	}

	if err := h.db.WithContext(ctx).Raw(sql, params).Scan(&row).Error; err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	response := GetOrderStatsQueryResponse{
		Period:               period.String(),
		TotalOrders:          row.TotalOrders,
		PendingOrders:        row.PendingOrders,
		ProcessingOrders:     row.ProcessingOrders,
		OutForDeliveryOrders: row.OutForDeliveryOrders,
		DeliveredOrders:      row.DeliveredOrders,
		CancelledOrders:      row.CancelledOrders,
		RefundedOrders:       row.RefundedOrders,
		TotalRevenue:         row.TotalRevenue,
		GeneratedAt:          now,
	}

	if row.TotalOrders > 0 {
		response.AverageOrderValue = row.TotalRevenue / float64(row.TotalOrders)
		response.DeliveryRate = float64(row.DeliveredOrders) / float64(row.TotalOrders) * 100
		response.CancellationRate = float64(row.CancelledOrders) / float64(row.TotalOrders) * 100
	}

	return response, nil
}
