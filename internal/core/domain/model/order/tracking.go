package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// TrackingEvent is one immutable entry in an order's tracking ledger. Entries
// are appended at the tail, one per state change, and are never edited,
// removed, or reordered. The sequence number fixes the storage order; readers
// get a newest-first view through Order.History.
type TrackingEvent struct {
	sequence    int
	status      Status
	timestamp   time.Time
	location    string
	description string
	updatedBy   *kernel.UUID
}

// RestoreTrackingEvent reconstructs a ledger entry from persistence.
func RestoreTrackingEvent(
	sequence int,
	status Status,
	timestamp time.Time,
	location, description string,
	updatedBy *kernel.UUID,
) TrackingEvent {
	return TrackingEvent{
		sequence:    sequence,
		status:      status,
		timestamp:   timestamp,
		location:    location,
		description: description,
		updatedBy:   updatedBy,
	}
}

// Sequence returns the 1-based position of the entry in insertion order.
func (e TrackingEvent) Sequence() int { return e.sequence }

// Status returns the order status this entry recorded.
func (e TrackingEvent) Status() Status { return e.status }

// Timestamp returns when the entry was appended.
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }

// Location returns the optional free-form location note.
func (e TrackingEvent) Location() string { return e.location }

// Description returns the optional human-readable description.
func (e TrackingEvent) Description() string { return e.description }

// UpdatedBy returns the actor reference, when one was recorded.
func (e TrackingEvent) UpdatedBy() *kernel.UUID { return e.updatedBy }
