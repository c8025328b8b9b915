package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/core/domain"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.Entry
		wantErr error
	}{
		{
			name:  "valid ingredient",
			entry: domain.Ingredient{Name: "Egg", CookTime: 2},
		},
		{
			name:  "zero cook time",
			entry: domain.Ingredient{Name: "Water"},
		},
		{
			name:    "negative cook time",
			entry:   domain.Ingredient{Name: "Egg", CookTime: -1},
			wantErr: domain.ErrInvalidCookTime,
		},
		{
			name:    "empty name",
			entry:   domain.Ingredient{CookTime: 1},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:  "empty recipe",
			entry: domain.Recipe{Name: "Nothing"},
		},
		{
			name: "valid recipe",
			entry: domain.Recipe{Name: "Omelette", RequiredItems: []domain.RequiredItem{
				{Name: "Egg", Quantity: 2},
				{Name: "Butter", Quantity: 1},
			}},
		},
		{
			name: "duplicate item",
			entry: domain.Recipe{Name: "Omelette", RequiredItems: []domain.RequiredItem{
				{Name: "Egg", Quantity: 2},
				{Name: "Egg", Quantity: 1},
			}},
			wantErr: domain.ErrDuplicateRequiredItem,
		},
		{
			name: "zero quantity",
			entry: domain.Recipe{Name: "Omelette", RequiredItems: []domain.RequiredItem{
				{Name: "Egg", Quantity: 0},
			}},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "unnamed item",
			entry: domain.Recipe{Name: "Omelette", RequiredItems: []domain.RequiredItem{
				{Quantity: 1},
			}},
			wantErr: domain.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateEntry(tt.entry)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryInput_Entry(t *testing.T) {
	t.Run("ingredient", func(t *testing.T) {
		e, err := domain.EntryInput{Type: domain.KindIngredient, Name: "Egg", CookTime: 3}.Entry()
		require.NoError(t, err)
		assert.Equal(t, domain.Ingredient{Name: "Egg", CookTime: 3}, e)
		assert.Equal(t, domain.KindIngredient, e.Kind())
	})

	t.Run("recipe without items", func(t *testing.T) {
		e, err := domain.EntryInput{Type: domain.KindRecipe, Name: "Toast"}.Entry()
		require.NoError(t, err)
		recipe, ok := e.(domain.Recipe)
		require.True(t, ok)
		assert.NotNil(t, recipe.RequiredItems)
		assert.Empty(t, recipe.RequiredItems)
	})

	t.Run("recipe copies items", func(t *testing.T) {
		items := []domain.RequiredItem{{Name: "Bread", Quantity: 1}}
		e, err := domain.EntryInput{Type: domain.KindRecipe, Name: "Toast", RequiredItems: items}.Entry()
		require.NoError(t, err)
		items[0].Quantity = 9

		recipe, ok := e.(domain.Recipe)
		require.True(t, ok)
		assert.Equal(t, 1, recipe.RequiredItems[0].Quantity)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := domain.EntryInput{Type: "sauce", Name: "Gravy"}.Entry()
		require.ErrorIs(t, err, domain.ErrUnknownEntryType)
	})
}

func TestViewOf(t *testing.T) {
	view := domain.ViewOf(domain.Ingredient{Name: "Egg"})
	assert.Equal(t, domain.KindIngredient, view.Type)
	require.NotNil(t, view.CookTime)
	assert.Equal(t, 0, *view.CookTime)

	view = domain.ViewOf(domain.Recipe{Name: "Toast", RequiredItems: []domain.RequiredItem{{Name: "Bread", Quantity: 2}}})
	assert.Equal(t, domain.KindRecipe, view.Type)
	assert.Nil(t, view.CookTime)
	assert.Equal(t, []domain.RequiredItem{{Name: "Bread", Quantity: 2}}, view.RequiredItems)
}
