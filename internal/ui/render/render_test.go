package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/ui/render"
	"go.trai.ch/zerr"
)

func TestSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s := &domain.Summary{
		Name:     "Skibidi Spaghetti",
		CookTime: 42,
		Ingredients: []domain.IngredientQuantity{
			{Name: "Beef", Quantity: 6},
			{Name: "Egg", Quantity: 4},
			{Name: "Flour", Quantity: 3},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, s))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Skibidi Spaghetti\n")
	assert.Contains(t, out, "Ingredient")
	assert.Contains(t, out, "Quantity")
	assert.Contains(t, out, "Total cook time: 42\n")

	beef := bytes.Index(buf.Bytes(), []byte("Beef"))
	egg := bytes.Index(buf.Bytes(), []byte("Egg"))
	flour := bytes.Index(buf.Bytes(), []byte("Flour"))
	assert.Less(t, beef, egg)
	assert.Less(t, egg, flour)
}

func TestSummary_NoIngredients(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, domain.NewSummary("Air")))

	assert.Contains(t, buf.String(), "Air\n")
	assert.Contains(t, buf.String(), "Total cook time: 0\n")
}

func TestCheckReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name    string
		results []app.CheckResult
		want    []string
	}{
		{
			name:    "nothing to check",
			results: nil,
			want:    []string{"no recipes to check"},
		},
		{
			name: "all ok",
			results: []app.CheckResult{
				{Name: "Toast", Summary: &domain.Summary{Name: "Toast", CookTime: 2, Ingredients: []domain.IngredientQuantity{{Name: "Bread", Quantity: 1}}}},
			},
			want: []string{"✓ Toast cook time 2, 1 ingredients\n", "1 recipes ok\n"},
		},
		{
			name: "with failures",
			results: []app.CheckResult{
				{Name: "Toast", Summary: domain.NewSummary("Toast")},
				{Name: "Loop", Err: zerr.Wrap(domain.ErrCycleDetected, "recipe cannot be resolved")},
			},
			want: []string{
				"✓ Toast cook time 0, 0 ingredients\n",
				"✗ Loop recipe cannot be resolved: cycle detected\n",
				"1 of 2 recipes failed\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.CheckReport(&buf, tt.results))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
