package cmd

import (
	"log/slog"

	httpserver "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis/statscache"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot assembles every adapter and use case of the service.
// Construction is cheap: handlers are built on demand so wiring stays in one
// place without a global registry.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.StatusNotifier
	statsCache queries.StatsCache
	logger     *slog.Logger
}

// NewCompositionRoot wires the application together. The redis client may be
// nil; statistics then skip the cache and always hit the database.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	var cache queries.StatsCache
	if redisClient != nil {
		cache = statscache.NewRedisStatsCache(redisClient, config.StatsCacheTTL, logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewSlogStatusNotifier(logger),
		statsCache: cache,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkAsDeliveredCommandHandler() commands.MarkAsDeliveredCommandHandler {
	return commands.NewMarkAsDeliveredCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateInitiateRefundCommandHandler() commands.InitiateRefundCommandHandler {
	return commands.NewInitiateRefundCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	return commands.NewAddReviewCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	return commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateSetDefaultAddressCommandHandler() commands.SetDefaultAddressCommandHandler {
	return commands.NewSetDefaultAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	return commands.NewDeleteAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB, c.statsCache)
}

func (c *CompositionRoot) CreateGetAddressesQueryHandler() queries.GetAddressesQueryHandler {
	return queries.NewGetAddressesQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(httpserver.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		MarkAsDelivered:   c.CreateMarkAsDeliveredCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		InitiateRefund:    c.CreateInitiateRefundCommandHandler(),
		ConfirmPayment:    c.CreateConfirmPaymentCommandHandler(),
		AddReview:         c.CreateAddReviewCommandHandler(),
		CreateAddress:     c.CreateCreateAddressCommandHandler(),
		UpdateAddress:     c.CreateUpdateAddressCommandHandler(),
		SetDefaultAddress: c.CreateSetDefaultAddressCommandHandler(),
		DeleteAddress:     c.CreateDeleteAddressCommandHandler(),

		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetTrackingHistory: c.CreateGetTrackingHistoryQueryHandler(),
		GetCustomerOrders:  c.CreateGetCustomerOrdersQueryHandler(),
		SearchOrders:       c.CreateSearchOrdersQueryHandler(),
		GetOrderStats:      c.CreateGetOrderStatsQueryHandler(),
		GetAddresses:       c.CreateGetAddressesQueryHandler(),
	})
}

// CreateOverdueDeliveryJob builds the overdue delivery scanner.
func (c *CompositionRoot) CreateOverdueDeliveryJob() *jobs.OverdueDeliveryJob {
	return jobs.NewOverdueDeliveryJob(c.orderUoWFactory(), c.logger)
}

// CreateStatsWarmupJob builds the statistics cache warmer, or nil when no
// cache is configured and warming would do nothing useful.
func (c *CompositionRoot) CreateStatsWarmupJob() *jobs.StatsWarmupJob {
	if c.statsCache == nil {
		return nil
	}
	return jobs.NewStatsWarmupJob(c.CreateGetOrderStatsQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}
