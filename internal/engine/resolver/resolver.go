// Package resolver flattens recipes into their base ingredients.
package resolver

import (
	"context"
	"strings"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver expands a recipe's required-item graph against an entry store.
type Resolver struct {
	store  ports.EntryStore
	tracer ports.Tracer
}

// New creates a Resolver reading from store.
func New(store ports.EntryStore, tracer ports.Tracer) *Resolver {
	return &Resolver{
		store:  store,
		tracer: tracer,
	}
}

// Resolve computes the summary of the recipe named root: total cook time and
// the base ingredient quantities needed for one unit. Any unknown reference or
// cycle fails the whole resolution and no partial summary is returned.
func (r *Resolver) Resolve(ctx context.Context, root string) (*domain.Summary, error) {
	_, span := r.tracer.Start(ctx, "resolver.Resolve")
	defer span.End()
	span.SetAttribute("recipe", root)

	summary, err := r.resolve(root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("cook_time", summary.CookTime)
	span.SetAttribute("ingredient_count", len(summary.Ingredients))
	return summary, nil
}

func (r *Resolver) resolve(root string) (*domain.Summary, error) {
	entry, ok := r.store.Get(root)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "failed to resolve recipe"), "name", root)
	}
	if _, ok := entry.(domain.Recipe); !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotARecipe, "failed to resolve recipe"), "name", root)
	}

	e := &expansion{
		store:   r.store,
		index:   make(map[string]int),
		onPath:  make(map[string]bool),
		summary: domain.NewSummary(root),
	}
	if err := e.visit(entry, 1); err != nil {
		return nil, err
	}
	return e.summary, nil
}

// expansion holds the state of one depth-first walk. Only recipes currently
// being expanded are on the path, so diamonds are walked once per route.
type expansion struct {
	store   ports.EntryStore
	summary *domain.Summary
	// index maps an ingredient name to its position in summary.Ingredients.
	index  map[string]int
	path   []string
	onPath map[string]bool
}

func (e *expansion) visit(entry domain.Entry, multiplier int) error {
	switch entry := entry.(type) {
	case domain.Ingredient:
		e.summary.CookTime += entry.CookTime * multiplier
		if i, seen := e.index[entry.Name]; seen {
			e.summary.Ingredients[i].Quantity += multiplier
			return nil
		}
		e.index[entry.Name] = len(e.summary.Ingredients)
		e.summary.Ingredients = append(e.summary.Ingredients, domain.IngredientQuantity{
			Name:     entry.Name,
			Quantity: multiplier,
		})
	case domain.Recipe:
		e.onPath[entry.Name] = true
		e.path = append(e.path, entry.Name)

		for _, item := range entry.RequiredItems {
			if e.onPath[item.Name] {
				return e.cycleError(item.Name)
			}
			child, ok := e.store.Get(item.Name)
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownReference, "failed to expand recipe"),
					"reference", item.Name), "recipe", entry.Name)
			}
			if err := e.visit(child, multiplier*item.Quantity); err != nil {
				return err
			}
		}

		e.path = e.path[:len(e.path)-1]
		delete(e.onPath, entry.Name)
	}
	return nil
}

// cycleError reports the path from the first occurrence of name back to itself.
func (e *expansion) cycleError(name string) error {
	start := 0
	for i, n := range e.path {
		if n == name {
			start = i
			break
		}
	}
	cycle := append(append([]string{}, e.path[start:]...), name)
	return zerr.With(zerr.Wrap(domain.ErrCycleDetected, "failed to expand recipe"),
		"cycle", strings.Join(cycle, " -> "))
}
