package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvieira/centavo/internal/model"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		wantErr    error
	}{
		{
			name: "flat categories",
			categories: []model.Category{
				{ID: "a", UserID: "u1", Name: "A", Type: model.CategoryTypeExpense},
				{ID: "b", UserID: "u1", Name: "B", Type: model.CategoryTypeExpense},
			},
		},
		{
			name: "one level of nesting",
			categories: []model.Category{
				{ID: "parent", UserID: "u1", Name: "Moradia", Type: model.CategoryTypeExpense},
				{ID: "child", UserID: "u1", Name: "Aluguel", Type: model.CategoryTypeExpense, ParentID: "parent"},
			},
		},
		{
			name: "grandchild rejected",
			categories: []model.Category{
				{ID: "a", UserID: "u1", Name: "A", Type: model.CategoryTypeExpense},
				{ID: "b", UserID: "u1", Name: "B", Type: model.CategoryTypeExpense, ParentID: "a"},
				{ID: "c", UserID: "u1", Name: "C", Type: model.CategoryTypeExpense, ParentID: "b"},
			},
			wantErr: ErrNestedChild,
		},
		{
			name: "duplicate id rejected",
			categories: []model.Category{
				{ID: "a", UserID: "u1", Name: "A", Type: model.CategoryTypeExpense},
				{ID: "a", UserID: "u1", Name: "A again", Type: model.CategoryTypeExpense},
			},
			wantErr: ErrDuplicateCategory,
		},
		{
			name: "empty id rejected",
			categories: []model.Category{
				{ID: "", UserID: "u1", Name: "A", Type: model.CategoryTypeExpense},
			},
			wantErr: ErrEmptyCategoryID,
		},
		{
			name: "dangling parent tolerated",
			categories: []model.Category{
				{ID: "orphan", UserID: "u1", Name: "Orphan", Type: model.CategoryTypeExpense, ParentID: "gone"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := New(tt.categories, model.GlobalCategoryCodes())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cat)
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	categories := []model.Category{
		{ID: "parent", UserID: "u1", Name: "Moradia", Type: model.CategoryTypeExpense},
		{ID: "child-2", UserID: "u1", Name: "Condomínio", Type: model.CategoryTypeExpense, ParentID: "parent"},
		{ID: "solo", UserID: "u1", Name: "Lazer", Type: model.CategoryTypeExpense},
		{ID: "child-1", UserID: "u1", Name: "Aluguel", Type: model.CategoryTypeExpense, ParentID: "parent"},
	}
	cat, err := New(categories, model.GlobalCategoryCodes())
	require.NoError(t, err)

	t.Run("category by id", func(t *testing.T) {
		got, ok := cat.CategoryByID("solo")
		require.True(t, ok)
		assert.Equal(t, "Lazer", got.Name)

		_, ok = cat.CategoryByID("missing")
		assert.False(t, ok)
	})

	t.Run("global code by name", func(t *testing.T) {
		code, ok := cat.GlobalCode("FOOD")
		require.True(t, ok)
		assert.Equal(t, "Alimentação", code.Label)

		_, ok = cat.GlobalCode("NOPE")
		assert.False(t, ok)
	})

	t.Run("children in insertion order", func(t *testing.T) {
		children := cat.ChildrenOf("parent")
		require.Len(t, children, 2)
		assert.Equal(t, "child-2", children[0].ID)
		assert.Equal(t, "child-1", children[1].ID)
	})

	t.Run("no children yields empty", func(t *testing.T) {
		assert.Empty(t, cat.ChildrenOf("solo"))
		assert.Empty(t, cat.ChildrenOf("missing"))
	})

	t.Run("categories preserve insertion order", func(t *testing.T) {
		all := cat.Categories()
		require.Len(t, all, 4)
		assert.Equal(t, "parent", all[0].ID)
		assert.Equal(t, "child-1", all[3].ID)
	})
}
