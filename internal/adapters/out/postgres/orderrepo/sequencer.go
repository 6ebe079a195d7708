package orderrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// CounterDTO represents the per-day order number counter row.
type CounterDTO struct {
	Day   time.Time `gorm:"type:date;primaryKey"`
	Value int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_counters".
func (CounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderNumberSequencer draws per-day sequence values from the
// order_counters table. Bound to the unit of work's transaction, a drawn
// value is released again when the transaction rolls back.
type GormOrderNumberSequencer struct {
	db *gorm.DB
}

// NewGormOrderNumberSequencer creates a sequencer on the given connection.
func NewGormOrderNumberSequencer(db *gorm.DB) *GormOrderNumberSequencer {
	return &GormOrderNumberSequencer{db: db}
}

// Next increments and returns the counter for the UTC calendar day of the
// given reference time. The upsert makes concurrent creators serialize on the
// day's row, so two transactions can not draw the same value.
func (s *GormOrderNumberSequencer) Next(ctx context.Context, day time.Time) (int, error) {
	utcDay := day.UTC().Truncate(24 * time.Hour)

	var value int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (day, value)
		VALUES (?, 1)
		ON CONFLICT (day)
		DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, utcDay).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
