// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain model and read projections straight from
// the database, per the CQRS split used across the application.
package queries

import (
	"time"

	"marketplace/internal/pkg/errs"
)

// Period selects the reporting window for order statistics.
type Period int

const (
	// PeriodUnknown is the zero value and never valid.
	PeriodUnknown Period = iota
	// PeriodDay covers the current UTC calendar day.
	PeriodDay
	// PeriodWeek covers the trailing seven days.
	PeriodWeek
	// PeriodMonth covers the trailing calendar month.
	PeriodMonth
	// PeriodYear covers the trailing calendar year.
	PeriodYear
	// PeriodAll covers the full order history.
	PeriodAll
)

var periodNames = map[Period]string{
	PeriodDay:   "day",
	PeriodWeek:  "week",
	PeriodMonth: "month",
	PeriodYear:  "year",
	PeriodAll:   "all",
}

var periodValues = map[string]Period{
	"day":   PeriodDay,
	"week":  PeriodWeek,
	"month": PeriodMonth,
	"year":  PeriodYear,
	"all":   PeriodAll,
}

// PeriodFromString parses a reporting period name.
func PeriodFromString(value string) (Period, error) {
	period, ok := periodValues[value]
	if !ok {
		return PeriodUnknown, errs.NewValueIsInvalidError("period")
	}
	return period, nil
}

// String returns the canonical period name.
func (p Period) String() string {
	name, ok := periodNames[p]
	if !ok {
		return "unknown"
	}
	return name
}

// Validate checks that the period names a known reporting window.
func (p Period) Validate() error {
	if _, ok := periodNames[p]; !ok {
		return errs.NewValueIsInvalidError("period")
	}
	return nil
}

// LowerBound returns the inclusive start of the reporting window relative to
// now, or nil for PeriodAll. Day means the start of the current UTC calendar
// day; week is the trailing seven days; month and year step back one calendar
// unit so month length and leap years are respected.
func (p Period) LowerBound(now time.Time) *time.Time {
	now = now.UTC()

	var bound time.Time
	switch p {
	case PeriodDay:
		bound = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	case PeriodWeek:
		bound = now.AddDate(0, 0, -7)
	case PeriodMonth:
		bound = now.AddDate(0, -1, 0)
	case PeriodYear:
		bound = now.AddDate(-1, 0, 0)
	default:
		return nil
	}

	return &bound
}
