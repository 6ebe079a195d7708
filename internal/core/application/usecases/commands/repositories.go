// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AddressRepoFactory provides access to the address book repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// SequencerFactory provides access to the order number sequencer within a
	// transaction, so a rolled-back creation never consumes a sequence slot.
	SequencerFactory interface {
		OrderNumberSequencer() ports.OrderNumberSequencer
	}

	// OrderUoW manages transactions for commands that modify a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for order creation, which needs the
	// sequencer and the order repository in the same transaction.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		SequencerFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AddressUoW manages transactions for address book operations.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}
)
