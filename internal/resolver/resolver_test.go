package resolver

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvieira/centavo/internal/catalog"
	"github.com/lucasvieira/centavo/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	categories := []model.Category{
		{ID: "cat-groceries", UserID: "u1", Name: "Mercado", Type: model.CategoryTypeExpense, Color: "#AABBCC"},
		{ID: "cat-housing", UserID: "u1", Name: "Moradia", Type: model.CategoryTypeExpense},
		{ID: "cat-rent", UserID: "u1", Name: "Aluguel", Type: model.CategoryTypeExpense, ParentID: "cat-housing"},
	}
	cat, err := catalog.New(categories, model.GlobalCategoryCodes())
	require.NoError(t, err)
	return cat
}

func expenseTx(categorization model.Categorization) model.Transaction {
	return model.Transaction{
		ID:             "tx-1",
		UserID:         "u1",
		Date:           time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:           model.TransactionTypeExpense,
		Amount:         decimal.NewFromInt(50),
		Categorization: categorization,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		categorization model.Categorization
		wantID         string
		wantName       string
		wantColor      string
		wantParentID   string
		wantSource     model.ResolutionSource
	}{
		{
			name: "direct reference used verbatim",
			categorization: model.DirectCategorization(model.Category{
				ID: "cat-groceries", Name: "Mercado", Type: model.CategoryTypeExpense, Color: "#AABBCC",
			}),
			wantID:     "cat-groceries",
			wantName:   "Mercado",
			wantColor:  "#AABBCC",
			wantSource: model.SourceCategory,
		},
		{
			name: "direct reference wins over colliding string schemes",
			categorization: model.DirectCategorization(model.Category{
				ID: "FOOD", Name: "Feira", Type: model.CategoryTypeExpense,
			}),
			wantID:     "FOOD",
			wantName:   "Feira",
			wantColor:  model.DefaultCategoryColor,
			wantSource: model.SourceCategory,
		},
		{
			name:           "string matching a global code",
			categorization: model.RawCategorization("FOOD"),
			wantID:         "FOOD",
			wantName:       "Alimentação",
			wantColor:      "#FF6961",
			wantSource:     model.SourceGlobalCode,
		},
		{
			name:           "string matching a category id",
			categorization: model.RawCategorization("cat-rent"),
			wantID:         "cat-rent",
			wantName:       "Aluguel",
			wantColor:      model.DefaultCategoryColor,
			wantParentID:   "cat-housing",
			wantSource:     model.SourceCategory,
		},
		{
			name:           "unknown string synthesizes a pseudo-category",
			categorization: model.RawCategorization("xyz-unknown"),
			wantID:         "xyz-unknown",
			wantName:       "xyz-unknown",
			wantColor:      model.DefaultCategoryColor,
			wantSource:     model.SourceSynthesized,
		},
		{
			name:           "absent categorization is uncategorized",
			categorization: model.NoCategorization(),
			wantID:         model.UncategorizedID,
			wantName:       "Sem categoria",
			wantColor:      model.DefaultCategoryColor,
			wantSource:     model.SourceUncategorized,
		},
		{
			name:           "empty string behaves as absent",
			categorization: model.RawCategorization(""),
			wantID:         model.UncategorizedID,
			wantName:       "Sem categoria",
			wantColor:      model.DefaultCategoryColor,
			wantSource:     model.SourceUncategorized,
		},
	}

	cat := testCatalog(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(expenseTx(tt.categorization), cat)

			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, tt.wantParentID, got.ParentID)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolveGlobalCodeHasNoParent(t *testing.T) {
	cat := testCatalog(t)

	got := Resolve(expenseTx(model.RawCategorization("SALARY")), cat)

	assert.Equal(t, "Salário", got.Name)
	assert.Equal(t, model.CategoryTypeIncome, got.Type)
	assert.Empty(t, got.ParentID)
}

func TestResolveCategoryIDBeatsNothingButCodeWins(t *testing.T) {
	// A catalog category whose id collides with a global code name: the
	// code scheme is checked first, so the string resolves to the code.
	categories := []model.Category{
		{ID: "FOOD", UserID: "u1", Name: "Comida caseira", Type: model.CategoryTypeExpense},
	}
	cat, err := catalog.New(categories, model.GlobalCategoryCodes())
	require.NoError(t, err)

	got := Resolve(expenseTx(model.RawCategorization("FOOD")), cat)

	assert.Equal(t, "Alimentação", got.Name)
	assert.Equal(t, model.SourceGlobalCode, got.Source)
}

func TestResolveIsDeterministic(t *testing.T) {
	cat := testCatalog(t)
	tx := expenseTx(model.RawCategorization("cat-groceries"))

	first := Resolve(tx, cat)
	second := Resolve(tx, cat)

	assert.Equal(t, first, second)
}
