// Package order contains the order aggregate and its value objects: the
// lifecycle state machine, the date-scoped order number, the append-only
// tracking ledger, the post-delivery review gate, and the money summary.
//
// The aggregate is the single write model for the order lifecycle. External
// collaborators (checkout, payment, identity, notifications) interact with it
// only through the application layer; nothing in this package performs I/O.
package order
