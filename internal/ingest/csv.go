// Package ingest parses transaction CSV files into domain records,
// deciding each transaction's categorization shape once at ingestion.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasvieira/centavo/internal/model"
)

// Parse errors.
var (
	ErrEmptyFile     = errors.New("csv file contains no transactions")
	ErrInvalidRecord = errors.New("invalid csv record")
)

// csvRow is the expected CSV layout:
//
//	date,amount,type,description,category
//	2024-03-05,50.00,EXPENSE,Mercado,FOOD
//
// The category column is optional free text; it may name a global code, a
// category id, or anything else. An empty column means uncategorized.
type csvRow struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
}

// ParseFile reads a transaction CSV from disk.
func ParseFile(path, userID string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	transactions, err := Parse(f, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return transactions, nil
}

// Parse reads transaction rows from r. Each row gets a generated id; row
// numbers in errors are 1-based and exclude the header.
func Parse(r io.Reader, userID string) ([]model.Transaction, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := row.toTransaction(userID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r csvRow) toTransaction(userID string) (model.Transaction, error) {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.Date), time.UTC)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: bad date %q", ErrInvalidRecord, r.Date)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: bad amount %q", ErrInvalidRecord, r.Amount)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: negative amount %q", ErrInvalidRecord, r.Amount)
	}

	txType := model.TransactionType(strings.ToUpper(strings.TrimSpace(r.Type)))
	switch txType {
	case model.TransactionTypeIncome, model.TransactionTypeExpense:
	default:
		return model.Transaction{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, r.Type)
	}

	return model.Transaction{
		ID:             uuid.NewString(),
		UserID:         userID,
		Date:           date,
		Description:    strings.TrimSpace(r.Description),
		Type:           txType,
		Amount:         amount,
		Categorization: model.RawCategorization(strings.TrimSpace(r.Category)),
	}, nil
}
