package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
	ErrSearchTermIsRequired = errs.NewValueIsRequiredError("search term")
)

// searchResultLimit caps how many orders a single search may return.
const searchResultLimit = 50

// SearchOrdersQuery finds orders by a case-insensitive substring over the
// order number, product names, shipping recipient and city, and notes.
type SearchOrdersQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query for the given term.
func NewSearchOrdersQuery(term string) (SearchOrdersQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchOrdersQuery{}, ErrSearchTermIsRequired
	}

	return SearchOrdersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Term returns the trimmed search term.
func (q SearchOrdersQuery) Term() string { return q.term }
