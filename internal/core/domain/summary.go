package domain

// IngredientQuantity is one line of a flattened recipe.
type IngredientQuantity struct {
	Name     string `json:"name" jsonschema:"ingredient name"`
	Quantity int    `json:"quantity" jsonschema:"total units needed for one unit of the recipe"`
}

// Summary is the flattened view of a recipe: total cook time and the base
// ingredients in the order they were first reached.
type Summary struct {
	Name        string               `json:"name" jsonschema:"recipe name"`
	CookTime    int                  `json:"cookTime" jsonschema:"total cook time of all base ingredients"`
	Ingredients []IngredientQuantity `json:"ingredients" jsonschema:"base ingredients in first-seen order"`
}

// NewSummary returns an empty summary for the named recipe.
func NewSummary(name string) *Summary {
	return &Summary{Name: name, Ingredients: []IngredientQuantity{}}
}
