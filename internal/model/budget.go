package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-user, per-category monthly target amount. A category
// with no budget row for a month has no budget insight for that month.
type Budget struct {
	UserID     string
	CategoryID string
	Year       int
	Month      time.Month
	Amount     decimal.Decimal
}
