// Package domain contains the cookbook entry model and the rules that keep it valid.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// EntryKind discriminates the two kinds of cookbook entries.
type EntryKind string

const (
	// KindIngredient marks a leaf entry with a cook time.
	KindIngredient EntryKind = "ingredient"
	// KindRecipe marks a composite entry built from required items.
	KindRecipe EntryKind = "recipe"
)

// Entry is a named item in the cookbook. Only Ingredient and Recipe implement it.
type Entry interface {
	EntryName() string
	Kind() EntryKind
	entry()
}

// Ingredient is an atomic entry with a preparation duration.
type Ingredient struct {
	Name     string
	CookTime int
}

// EntryName returns the ingredient name.
func (i Ingredient) EntryName() string { return i.Name }

// Kind returns KindIngredient.
func (Ingredient) Kind() EntryKind { return KindIngredient }

func (Ingredient) entry() {}

// RequiredItem is one quantified reference from a recipe to another entry.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name" jsonschema:"name of the required ingredient or recipe"`
	Quantity int    `json:"quantity" yaml:"quantity" jsonschema:"how many units are required"`
}

// Recipe is a composite entry. Item names are unique within RequiredItems.
type Recipe struct {
	Name          string
	RequiredItems []RequiredItem
}

// EntryName returns the recipe name.
func (r Recipe) EntryName() string { return r.Name }

// Kind returns KindRecipe.
func (Recipe) Kind() EntryKind { return KindRecipe }

func (Recipe) entry() {}

// Clone returns a recipe that does not share its item slice with r.
func (r Recipe) Clone() Recipe {
	return Recipe{Name: r.Name, RequiredItems: slices.Clone(r.RequiredItems)}
}

// ValidateEntry checks the per-entry invariants. Name uniqueness across the
// store is the store's concern.
func ValidateEntry(e Entry) error {
	if e.EntryName() == "" {
		return zerr.Wrap(ErrEmptyName, "invalid entry")
	}

	switch e := e.(type) {
	case Ingredient:
		if e.CookTime < 0 {
			return zerr.With(zerr.Wrap(ErrInvalidCookTime, "invalid ingredient"), "name", e.Name)
		}
	case Recipe:
		seen := make(map[string]struct{}, len(e.RequiredItems))
		for _, item := range e.RequiredItems {
			if item.Name == "" {
				return zerr.With(zerr.Wrap(ErrEmptyName, "invalid required item"), "recipe", e.Name)
			}
			if _, dup := seen[item.Name]; dup {
				return zerr.With(zerr.With(zerr.Wrap(ErrDuplicateRequiredItem, "invalid recipe"),
					"name", e.Name), "item", item.Name)
			}
			seen[item.Name] = struct{}{}
			if item.Quantity <= 0 {
				return zerr.With(zerr.With(zerr.Wrap(ErrInvalidQuantity, "invalid recipe"),
					"name", e.Name), "item", item.Name)
			}
		}
	}
	return nil
}

// EntryInput is the creation payload accepted by every transport.
type EntryInput struct {
	Type          EntryKind      `json:"type" yaml:"type" jsonschema:"entry kind, either recipe or ingredient"`
	Name          string         `json:"name" yaml:"name" jsonschema:"unique entry name"`
	CookTime      int            `json:"cookTime,omitempty" yaml:"cookTime,omitempty" jsonschema:"preparation time of an ingredient"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty" jsonschema:"items a recipe is made from"`
}

// Entry converts the payload into an Entry. Validation beyond the type
// discriminator happens when the entry is stored.
func (in EntryInput) Entry() (Entry, error) {
	switch in.Type {
	case KindIngredient:
		return Ingredient{Name: in.Name, CookTime: in.CookTime}, nil
	case KindRecipe:
		items := slices.Clone(in.RequiredItems)
		if items == nil {
			items = []RequiredItem{}
		}
		return Recipe{Name: in.Name, RequiredItems: items}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownEntryType, "invalid entry"), "type", string(in.Type))
	}
}

// EntryView is the read model of an entry. CookTime is only set for ingredients.
type EntryView struct {
	Type          EntryKind      `json:"type" jsonschema:"entry kind, either recipe or ingredient"`
	Name          string         `json:"name" jsonschema:"entry name"`
	CookTime      *int           `json:"cookTime,omitempty" jsonschema:"preparation time of an ingredient"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" jsonschema:"items a recipe is made from"`
}

// ViewOf builds the read model of e.
func ViewOf(e Entry) EntryView {
	switch e := e.(type) {
	case Ingredient:
		cookTime := e.CookTime
		return EntryView{Type: KindIngredient, Name: e.Name, CookTime: &cookTime}
	case Recipe:
		return EntryView{Type: KindRecipe, Name: e.Name, RequiredItems: slices.Clone(e.RequiredItems)}
	default:
		return EntryView{Type: e.Kind(), Name: e.EntryName()}
	}
}
