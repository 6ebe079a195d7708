package addressrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address book entry. When the entry is the default, the
// flag is cleared on the owner's other entries in the same transaction.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.IsDefault() {
		if err := r.clearOtherDefaults(ctx, aggregate); err != nil {
			return err
		}
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing address book entry, keeping the single-default
// invariant for the owner.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.IsDefault() {
		if err := r.clearOtherDefaults(ctx, aggregate); err != nil {
			return err
		}
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an address book entry by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves the owner's address book, default entry first,
// then most recently updated.
func (r *GormAddressRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*address.Address, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("is_default DESC, updated_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		addresses = append(addresses, entry)
	}

	return addresses, nil
}

// Delete removes an address book entry.
func (r *GormAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}

	return nil
}

func (r *GormAddressRepository) clearOtherDefaults(ctx context.Context, aggregate *address.Address) error {
	return r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("owner_id = ? AND id <> ?", aggregate.OwnerID().Bytes(), aggregate.ID().Bytes()).
		Update("is_default", false).Error
}
