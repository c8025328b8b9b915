package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/core/domain"
	_ "go.trai.ch/cookbook/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of
	// the type used in Dep[T]. The store, logger, tracer and config loader are
	// all resolved through the shared ports package, so it expects a single
	// dependency named "ports".
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftExecute(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background(), graft.DisableCache())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	require.NoError(t, components.App.CreateEntry(domain.EntryInput{Type: domain.KindIngredient, Name: "Egg", CookTime: 3}))
	require.NoError(t, components.App.CreateEntry(domain.EntryInput{
		Type:          domain.KindRecipe,
		Name:          "Omelette",
		RequiredItems: []domain.RequiredItem{{Name: "Egg", Quantity: 2}},
	}))

	summary, err := components.App.Summarize(context.Background(), "Omelette")
	require.NoError(t, err)
	assert.Equal(t, 6, summary.CookTime)
}
