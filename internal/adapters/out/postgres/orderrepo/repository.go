package orderrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items and initial tracking
// entry. A unique-index violation on the order number is reported as
// order.ErrNumberGenerationConflict so the caller can redraw a sequence.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, products, tracking := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return order.ErrNumberGenerationConflict
		}
		return err
	}

	if len(products) > 0 {
		if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
			return err
		}
	}
	if err := r.appendTracking(ctx, tracking); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The write is guarded by the version the
// aggregate was loaded with: a stale version updates zero rows and surfaces
// as ConcurrentModificationError. Line items are immutable and not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _, tracking := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	if err := r.appendTracking(ctx, tracking); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full tracking history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByNumber retrieves an order by its order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetAllOverdue retrieves orders still moving through the pipeline whose
// estimated delivery date passed before the given moment.
func (r *GormOrderRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("estimated_delivery_date < ?", before).
		Where("status IN ?", []int{
			int(order.Pending), int(order.Processing), int(order.OutForDelivery),
		}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, loadErr := r.load(ctx, dto)
		if loadErr != nil {
			return nil, loadErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// load fetches the order's line items and ledger rows and restores the
// aggregate.
func (r *GormOrderRepository) load(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var products []ProductDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	var tracking []TrackingEventDTO
	err = r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("sequence ASC").
		Find(&tracking).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, products, tracking)
}

func (r *GormOrderRepository) appendTracking(ctx context.Context, tracking []TrackingEventDTO) error {
	if len(tracking) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tracking).Error
}
