package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAddressesQueryHandler reads a customer's address book.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address book reads.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle executes the read. A customer without saved addresses gets an empty
// list, not an error.
func (h GetAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetAddressesQuery,
) ([]GetAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	type addressRow struct {
		ID         uuid.UUID `gorm:"column:id"`
		Label      string    `gorm:"column:label"`
		Name       string    `gorm:"column:name"`
		Street     string    `gorm:"column:street"`
		City       string    `gorm:"column:city"`
		State      string    `gorm:"column:state"`
		PostalCode string    `gorm:"column:postal_code"`
		Country    string    `gorm:"column:country"`
		Phone      string    `gorm:"column:phone"`
		IsDefault  bool      `gorm:"column:is_default"`
		CreatedAt  time.Time `gorm:"column:created_at"`
		UpdatedAt  time.Time `gorm:"column:updated_at"`
	}

	var rows []addressRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, label, name, street, city, state, postal_code, country, phone,
		       is_default, created_at, updated_at
		FROM addresses
		WHERE owner_id = ?
		ORDER BY is_default DESC, updated_at DESC
	`, query.OwnerID().String()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]GetAddressesQueryResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, GetAddressesQueryResponse{
			ID:    id,
			Label: row.Label,
			Address: AddressView{
				Name:       row.Name,
				Street:     row.Street,
				City:       row.City,
				State:      row.State,
				PostalCode: row.PostalCode,
				Country:    row.Country,
				Phone:      row.Phone,
			},
			IsDefault: row.IsDefault,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return entries, nil
}
