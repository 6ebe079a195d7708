// Package addressrepo provides persistence for customers' address books.
package addressrepo

import (
	"time"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for address book entries.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Label      string    `gorm:"not null"`
	Name       string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address entity to its database representation.
func fromDomain(entity *address.Address) AddressDTO {
	snapshot := entity.Snapshot()
	return AddressDTO{
		ID:         entity.ID().Bytes(),
		OwnerID:    entity.OwnerID().Bytes(),
		Label:      entity.Label(),
		Name:       snapshot.Name(),
		Street:     snapshot.Street(),
		City:       snapshot.City(),
		State:      snapshot.State(),
		PostalCode: snapshot.PostalCode(),
		Country:    snapshot.Country(),
		Phone:      snapshot.Phone(),
		IsDefault:  entity.IsDefault(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// toDomain converts a database row back to an address entity.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	snapshot, err := order.NewAddressSnapshot(
		dto.Name, dto.Street, dto.City, dto.State, dto.PostalCode, dto.Country, dto.Phone,
	)
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(
		id, ownerID, dto.Label, snapshot, dto.IsDefault, dto.CreatedAt, dto.UpdatedAt,
	)
}
