// Package timewindow partitions transactions into calendar-month buckets.
package timewindow

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasvieira/centavo/internal/model"
)

// ErrInvalidWindow indicates a window specification the bucketer cannot
// serve, such as a non-positive month count. Rejected before any
// aggregation begins.
var ErrInvalidWindow = errors.New("invalid time window")

// MonthKey identifies one calendar month in UTC terms.
type MonthKey struct {
	Year  int
	Month time.Month
}

// String renders the key as "2006-01".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Previous returns the key of the immediately preceding calendar month.
func (k MonthKey) Previous() MonthKey {
	if k.Month == time.January {
		return MonthKey{Year: k.Year - 1, Month: time.December}
	}
	return MonthKey{Year: k.Year, Month: k.Month - 1}
}

// MonthKeyOf returns the month bucket of a date. The calendar date is read
// in UTC before any local-timezone conversion, so a transaction never
// shifts to an adjacent day.
func MonthKeyOf(date time.Time) MonthKey {
	year, month, _ := date.UTC().Date()
	return MonthKey{Year: year, Month: month}
}

// Window is an ordered, contiguous run of month buckets, oldest first.
// Months with zero transactions are still enumerated: consumers must see a
// zero, not a gap.
type Window struct {
	keys []MonthKey
}

// LastNMonths returns the window of the n calendar months ending at (and
// including) the month of ref. n must be at least 1.
func LastNMonths(n int, ref time.Time) (Window, error) {
	if n <= 0 {
		return Window{}, fmt.Errorf("%w: month count must be positive, got %d", ErrInvalidWindow, n)
	}

	keys := make([]MonthKey, n)
	key := MonthKeyOf(ref)
	for i := n - 1; i >= 0; i-- {
		keys[i] = key
		key = key.Previous()
	}
	return Window{keys: keys}, nil
}

// CurrentAndPrevious returns the two-bucket window {previous month,
// month of ref}, oldest first.
func CurrentAndPrevious(ref time.Time) Window {
	current := MonthKeyOf(ref)
	return Window{keys: []MonthKey{current.Previous(), current}}
}

// Buckets returns the window's month keys, oldest first.
func (w Window) Buckets() []MonthKey {
	return w.keys
}

// Contains reports whether the window includes the given month.
func (w Window) Contains(key MonthKey) bool {
	for _, k := range w.keys {
		if k == key {
			return true
		}
	}
	return false
}

// TransactionsIn returns the subset of transactions whose calendar month
// equals the bucket.
func TransactionsIn(key MonthKey, transactions []model.Transaction) []model.Transaction {
	var matched []model.Transaction
	for _, tx := range transactions {
		if MonthKeyOf(tx.Date) == key {
			matched = append(matched, tx)
		}
	}
	return matched
}
