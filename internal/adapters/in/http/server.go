// Package http exposes the order lifecycle over a REST API.
// Handlers translate JSON payloads into commands and queries, and map domain
// errors onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	MarkAsDelivered   commands.MarkAsDeliveredCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	InitiateRefund    commands.InitiateRefundCommandHandler
	ConfirmPayment    commands.ConfirmPaymentCommandHandler
	AddReview         commands.AddReviewCommandHandler
	CreateAddress     commands.CreateAddressCommandHandler
	UpdateAddress     commands.UpdateAddressCommandHandler
	SetDefaultAddress commands.SetDefaultAddressCommandHandler
	DeleteAddress     commands.DeleteAddressCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetTrackingHistory queries.GetTrackingHistoryQueryHandler
	GetCustomerOrders  queries.GetCustomerOrdersQueryHandler
	SearchOrders       queries.SearchOrdersQueryHandler
	GetOrderStats      queries.GetOrderStatsQueryHandler
	GetAddresses       queries.GetAddressesQueryHandler
}

// Server wires HTTP routes to application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/search", s.SearchOrders)
	api.GET("/orders/number/:number", s.GetOrderByNumber)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/tracking", s.GetTrackingHistory)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/driver", s.AssignDriver)
	api.POST("/orders/:id/delivered", s.MarkAsDelivered)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/refund", s.InitiateRefund)
	api.POST("/orders/:id/payment", s.ConfirmPayment)
	api.POST("/orders/:id/reviews", s.AddReview)

	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/customers/:id/addresses", s.GetAddresses)

	api.POST("/addresses", s.CreateAddress)
	api.PUT("/addresses/:id", s.UpdateAddress)
	api.PUT("/addresses/:id/default", s.SetDefaultAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)

	api.GET("/stats/orders", s.GetOrderStats)
}

// AddressPayload carries postal address fields in requests.
type AddressPayload struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

func (p AddressPayload) toSnapshot() (order.AddressSnapshot, error) {
	return order.NewAddressSnapshot(
		p.Name, p.Street, p.City, p.State, p.PostalCode, p.Country, p.Phone,
	)
}

// LineItemPayload carries one line item in an order creation request.
type LineItemPayload struct {
	ProductID    string     `json:"product_id"`
	Name         string     `json:"name"`
	UnitPrice    float64    `json:"unit_price"`
	Quantity     int        `json:"quantity"`
	SellerID     string     `json:"seller_id"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerID            string            `json:"customer_id"`
	Products              []LineItemPayload `json:"products"`
	ShippingAddress       AddressPayload    `json:"shipping_address"`
	BillingAddress        AddressPayload    `json:"billing_address"`
	PaymentMethod         string            `json:"payment_method"`
	ShippingFee           float64           `json:"shipping_fee"`
	MarketplaceFee        float64           `json:"marketplace_fee"`
	Taxes                 float64           `json:"taxes"`
	Discount              float64           `json:"discount"`
	DeliveryInstructions  string            `json:"delivery_instructions,omitempty"`
	Notes                 string            `json:"notes,omitempty"`
	EstimatedDeliveryDate *time.Time        `json:"estimated_delivery_date,omitempty"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	products := make([]order.LineItem, 0, len(request.Products))
	for _, payload := range request.Products {
		item, itemErr := lineItemFromPayload(payload)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		products = append(products, item)
	}

	shipping, err := request.ShippingAddress.toSnapshot()
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}
	billing, err := request.BillingAddress.toSnapshot()
	if err != nil {
		return badRequest(ctx, "Invalid billing address: "+err.Error())
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		products,
		shipping,
		billing,
		paymentMethod,
		commands.Pricing{
			ShippingFee:    request.ShippingFee,
			MarketplaceFee: request.MarketplaceFee,
			Taxes:          request.Taxes,
			Discount:       request.Discount,
		},
		order.Details{
			DeliveryInstructions:  request.DeliveryInstructions,
			Notes:                 request.Notes,
			EstimatedDeliveryDate: request.EstimatedDeliveryDate,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /api/v1/orders/number/:number.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	number, err := order.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetOrderQueryByNumber(number)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrackingHistory handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetTrackingHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetTrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

// UpdateOrderStatusRequest carries a status change.
type UpdateOrderStatusRequest struct {
	Status      string `json:"status"`
	ActorID     string `json:"actor_id"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next, actor, request.Location, request.Description)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriverRequest carries a driver assignment.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
	ActorID  string `json:"actor_id"`
}

// AssignDriver handles PUT /api/v1/orders/:id/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}
	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAsDeliveredRequest carries the delivery confirmation.
type MarkAsDeliveredRequest struct {
	ActorID         string `json:"actor_id"`
	ProofOfDelivery string `json:"proof_of_delivery,omitempty"`
}

// MarkAsDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkAsDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request MarkAsDeliveredRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewMarkAsDeliveredCommand(orderID, actor, request.ProofOfDelivery)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.MarkAsDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderRequest carries a cancellation.
type CancelOrderRequest struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InitiateRefundRequest carries a refund request.
type InitiateRefundRequest struct {
	Reason string `json:"reason"`
}

// InitiateRefund handles POST /api/v1/orders/:id/refund.
func (s *Server) InitiateRefund(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request InitiateRefundRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInitiateRefundCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.InitiateRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPaymentRequest carries the payment settlement.
type ConfirmPaymentRequest struct {
	TransactionID string     `json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ConfirmPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paidAt := time.Now().UTC()
	if request.PaidAt != nil {
		paidAt = *request.PaidAt
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, request.TransactionID, paidAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.ConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddReviewRequest carries a post-delivery review.
type AddReviewRequest struct {
	Target string `json:"target"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// AddReview handles POST /api/v1/orders/:id/reviews.
func (s *Server) AddReview(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AddReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var target commands.ReviewTarget
	switch request.Target {
	case "order":
		target = commands.ReviewTargetOrder
	case "driver":
		target = commands.ReviewTargetDriver
	default:
		return badRequest(ctx, "Invalid review target: expected \"order\" or \"driver\"")
	}

	cmd, err := commands.NewAddReviewCommand(orderID, target, request.Rating, request.Text)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.AddReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var statusFilter *int
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status filter")
		}
		value := int(status)
		statusFilter = &value
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, statusFilter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// SearchOrders handles GET /api/v1/orders/search?q=term.
func (s *Server) SearchOrders(ctx echo.Context) error {
	query, err := queries.NewSearchOrdersQuery(ctx.QueryParam("q"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.handlers.SearchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderStats handles GET /api/v1/stats/orders?period=day.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	period, err := queries.PeriodFromString(ctx.QueryParam("period"))
	if err != nil {
		return badRequest(ctx, "Invalid period: expected day, week, month, year, or all")
	}

	query, err := queries.NewGetOrderStatsQuery(period)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.handlers.GetOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// CreateAddressRequest carries a new address book entry.
type CreateAddressRequest struct {
	OwnerID   string         `json:"owner_id"`
	Label     string         `json:"label"`
	Address   AddressPayload `json:"address"`
	IsDefault bool           `json:"is_default"`
}

// CreateAddress handles POST /api/v1/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	var request CreateAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(request.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	snapshot, err := request.Address.toSnapshot()
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(addressID, ownerID, request.Label, snapshot, request.IsDefault)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CreateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": addressID.String()})
}

// UpdateAddressRequest carries an address book edit.
type UpdateAddressRequest struct {
	Label   string         `json:"label"`
	Address AddressPayload `json:"address"`
}

// UpdateAddress handles PUT /api/v1/addresses/:id.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	addressID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	var request UpdateAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	snapshot, err := request.Address.toSnapshot()
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewUpdateAddressCommand(addressID, request.Label, snapshot)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.UpdateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDefaultAddress handles PUT /api/v1/addresses/:id/default.
func (s *Server) SetDefaultAddress(ctx echo.Context) error {
	addressID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewSetDefaultAddressCommand(addressID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.SetDefaultAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	addressID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewDeleteAddressCommand(addressID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.DeleteAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAddresses handles GET /api/v1/customers/:id/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetAddressesQuery(ownerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

func lineItemFromPayload(payload LineItemPayload) (order.LineItem, error) {
	productID, err := kernel.UUIDFromString(payload.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}

	sellerID, err := kernel.UUIDFromString(payload.SellerID)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(
		productID, payload.Name, payload.UnitPrice, payload.Quantity, sellerID, payload.DeliveryDate,
	)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes. Lifecycle
// violations surface as conflicts so clients can distinguish them from
// malformed input.
func respondError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var concurrentErr *errs.ConcurrentModificationError
	if errors.As(err, &concurrentErr) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidTransition) ||
		errors.Is(err, order.ErrAlreadyReviewed) ||
		errors.Is(err, order.ErrOrderNotDelivered) ||
		errors.Is(err, order.ErrNoDriverAssigned) ||
		errors.Is(err, order.ErrNumberGenerationConflict) ||
		errors.Is(err, order.ErrDailySequenceExhausted) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var rangeErr *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalidErr) || errors.As(err, &requiredErr) || errors.As(err, &rangeErr) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
