package model

import (
	"cookbook/internal/recipe"

	"github.com/google/uuid"
)

// Ingredient is the wire form of a recipe ingredient.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Price    float64 `json:"price"`
	Label    string  `json:"label,omitempty"`
}

// Recipe is the wire form of a recipe. Exactly one of Servings, ServingStyle
// and Sweetness is set, according to Category.
type Recipe struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Category      string       `json:"category"`
	Kind          string       `json:"kind"`
	Instructions  string       `json:"instructions"`
	PersonalNotes string       `json:"personalNotes"`
	ImagePath     *string      `json:"imagePath,omitempty"`
	Servings      *int         `json:"servings,omitempty"`
	ServingStyle  *string      `json:"servingStyle,omitempty"`
	Sweetness     *string      `json:"sweetness,omitempty"`
	Ingredients   []Ingredient `json:"ingredients"`
	TotalCost     float64      `json:"totalCost"`
}

// IngredientRequest is the payload for adding an ingredient.
type IngredientRequest struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Price    float64 `json:"price"`
}

// RecipeRequest is the payload for creating or updating a recipe. Variant
// fields left nil fall back to the form defaults.
type RecipeRequest struct {
	Title         string              `json:"title" validate:"notblank"`
	Category      string              `json:"category" validate:"category"`
	Instructions  string              `json:"instructions"`
	PersonalNotes string              `json:"personalNotes"`
	ImagePath     *string             `json:"imagePath,omitempty"`
	Servings      *int                `json:"servings,omitempty"`
	ServingStyle  *string             `json:"servingStyle,omitempty"`
	Sweetness     *string             `json:"sweetness,omitempty"`
	Ingredients   []IngredientRequest `json:"ingredients" validate:"dive"`
}

// CostRequest selects the ingredients the user already owns. The three
// selectors are combined.
type CostRequest struct {
	// AvailableIndexes are positions in the recipe's ingredient list.
	AvailableIndexes []int `json:"availableIndexes,omitempty"`

	// AvailableLabels are display labels ("8 cloves Garlic - ₱10.00"),
	// matched with the legacy last-word heuristic.
	AvailableLabels []string `json:"availableLabels,omitempty"`

	// AvailableNames are ingredient names, matched case-insensitively.
	AvailableNames []string `json:"availableNames,omitempty"`
}

// CostResponse is the cost calculator result.
type CostResponse struct {
	RecipeID    uuid.UUID `json:"recipeId"`
	Total       float64   `json:"total"`
	Remaining   float64   `json:"remaining"`
	Saved       float64   `json:"saved"`
	Ingredients []string  `json:"ingredients"`
}

// NewRecipe converts a domain recipe to its wire form.
func NewRecipe(r *recipe.Recipe) Recipe {
	ings := r.Ingredients()
	out := Recipe{
		ID:            r.ID(),
		Title:         r.Title(),
		Category:      r.Category(),
		Kind:          string(r.Kind()),
		Instructions:  r.Instructions(),
		PersonalNotes: r.PersonalNotes(),
		ImagePath:     r.ImagePath(),
		Ingredients:   make([]Ingredient, len(ings)),
		TotalCost:     r.TotalCost(),
	}

	switch r.Kind() {
	case recipe.KindMainDish:
		n := r.Servings()
		out.Servings = &n
	case recipe.KindAppetizer:
		s := r.ServingStyle()
		out.ServingStyle = &s
	case recipe.KindDessert:
		s := r.Sweetness()
		out.Sweetness = &s
	}

	for i, ing := range ings {
		out.Ingredients[i] = Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Price:    ing.Price,
			Label:    ing.String(),
		}
	}
	return out
}

// NewRecipes converts a list of domain recipes.
func NewRecipes(rs []*recipe.Recipe) []Recipe {
	out := make([]Recipe, len(rs))
	for i, r := range rs {
		out[i] = NewRecipe(r)
	}
	return out
}

// ToIngredient converts the request to a domain ingredient.
func (r IngredientRequest) ToIngredient() recipe.Ingredient {
	return recipe.NewIngredient(r.Name, r.Quantity, r.Price)
}
