package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvieira/centavo/internal/model"
)

func TestParse(t *testing.T) {
	input := `date,amount,type,description,category
2024-03-05,50.00,EXPENSE,Mercado,FOOD
2024-03-10,3500,income,Salário,SALARY
2024-03-12,19.90,EXPENSE,Streaming,
`

	transactions, err := Parse(strings.NewReader(input), "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "u1", first.UserID)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, model.TransactionTypeExpense, first.Type)
	assert.Equal(t, "50", first.Amount.String())
	raw, ok := first.Categorization.Raw()
	require.True(t, ok)
	assert.Equal(t, "FOOD", raw)

	assert.Equal(t, model.TransactionTypeIncome, transactions[1].Type)

	// Empty category column means uncategorized, not an empty string.
	assert.Equal(t, model.CategorizationNone, transactions[2].Categorization.Kind())
}

func TestParseRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "bad date", row: "05/03/2024,50,EXPENSE,x,"},
		{name: "bad amount", row: "2024-03-05,fifty,EXPENSE,x,"},
		{name: "negative amount", row: "2024-03-05,-50,EXPENSE,x,"},
		{name: "unknown type", row: "2024-03-05,50,TRANSFER,x,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "date,amount,type,description,category\n" + tt.row + "\n"
			_, err := Parse(strings.NewReader(input), "u1")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestParseEmptyFile(t *testing.T) {
	input := "date,amount,type,description,category\n"
	_, err := Parse(strings.NewReader(input), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseGeneratesUniqueIDs(t *testing.T) {
	input := `date,amount,type,description,category
2024-03-05,10,EXPENSE,a,
2024-03-05,10,EXPENSE,a,
`
	transactions, err := Parse(strings.NewReader(input), "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.NotEqual(t, transactions[0].ID, transactions[1].ID)
}
