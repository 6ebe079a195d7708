// Package address contains the customer address book entity. Entries are
// reusable templates for checkout; orders keep their own immutable copy.
package address
