package timewindow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvieira/centavo/internal/model"
)

func TestMonthKeyOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want MonthKey
	}{
		{
			name: "plain utc date",
			date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			want: MonthKey{Year: 2024, Month: time.March},
		},
		{
			name: "first of month stays in its month",
			date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: MonthKey{Year: 2024, Month: time.March},
		},
		{
			name: "western zone does not shift the utc date",
			// 2024-02-29 22:00 -03:00 is already 2024-03-01 01:00 UTC.
			date: time.Date(2024, 2, 29, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
			want: MonthKey{Year: 2024, Month: time.March},
		},
		{
			name: "eastern zone does not shift the utc date",
			// 2024-03-01 01:00 +03:00 is still 2024-02-29 22:00 UTC.
			date: time.Date(2024, 3, 1, 1, 0, 0, 0, time.FixedZone("MSK", 3*3600)),
			want: MonthKey{Year: 2024, Month: time.February},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthKeyOf(tt.date))
		})
	}
}

func TestMonthKeyPrevious(t *testing.T) {
	assert.Equal(t, MonthKey{Year: 2024, Month: time.February},
		MonthKey{Year: 2024, Month: time.March}.Previous())
	assert.Equal(t, MonthKey{Year: 2023, Month: time.December},
		MonthKey{Year: 2024, Month: time.January}.Previous())
}

func TestMonthKeyString(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey{Year: 2024, Month: time.March}.String())
	assert.Equal(t, "2023-12", MonthKey{Year: 2023, Month: time.December}.String())
}

func TestLastNMonths(t *testing.T) {
	ref := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive counts", func(t *testing.T) {
		for _, n := range []int{0, -1, -12} {
			_, err := LastNMonths(n, ref)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		}
	})

	t.Run("single month", func(t *testing.T) {
		w, err := LastNMonths(1, ref)
		require.NoError(t, err)
		assert.Equal(t, []MonthKey{{Year: 2024, Month: time.February}}, w.Buckets())
	})

	t.Run("crosses year boundary oldest first", func(t *testing.T) {
		w, err := LastNMonths(4, ref)
		require.NoError(t, err)
		assert.Equal(t, []MonthKey{
			{Year: 2023, Month: time.November},
			{Year: 2023, Month: time.December},
			{Year: 2024, Month: time.January},
			{Year: 2024, Month: time.February},
		}, w.Buckets())
	})
}

func TestCurrentAndPrevious(t *testing.T) {
	w := CurrentAndPrevious(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []MonthKey{
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
	}, w.Buckets())
}

func TestWindowContains(t *testing.T) {
	w, err := LastNMonths(2, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, w.Contains(MonthKey{Year: 2024, Month: time.March}))
	assert.True(t, w.Contains(MonthKey{Year: 2024, Month: time.February}))
	assert.False(t, w.Contains(MonthKey{Year: 2024, Month: time.January}))
}

func TestTransactionsIn(t *testing.T) {
	mkTx := func(id string, date time.Time) model.Transaction {
		return model.Transaction{
			ID:     id,
			UserID: "u1",
			Date:   date,
			Type:   model.TransactionTypeExpense,
			Amount: decimal.NewFromInt(10),
		}
	}

	transactions := []model.Transaction{
		mkTx("march-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		mkTx("feb", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)),
		mkTx("march-2", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
	}

	march := TransactionsIn(MonthKey{Year: 2024, Month: time.March}, transactions)
	require.Len(t, march, 2)
	assert.Equal(t, "march-1", march[0].ID)
	assert.Equal(t, "march-2", march[1].ID)

	assert.Empty(t, TransactionsIn(MonthKey{Year: 2024, Month: time.January}, transactions))
}
