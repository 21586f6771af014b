package recipe

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the recipe variant.
type Kind string

// Recipe variants. The values double as the category labels shown to users.
const (
	KindMainDish  Kind = "Main Dish"
	KindAppetizer Kind = "Appetizer"
	KindDessert   Kind = "Dessert"
)

// Defaults applied when a recipe is created or converted without an explicit
// variant payload.
const (
	DefaultServings     = 4
	DefaultServingStyle = "Hot"
	DefaultSweetness    = "Medium"
)

// ParseKind maps a category label to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMainDish, KindAppetizer, KindDessert:
		return Kind(s), true
	}
	return "", false
}

// Recipe is a tagged variant over main dishes, appetizers and desserts.
// Only the payload field matching Kind is meaningful.
type Recipe struct {
	id            uuid.UUID
	kind          Kind
	title         string
	category      string
	instructions  string
	personalNotes string
	imagePath     *string
	ingredients   []Ingredient

	servings     int
	servingStyle string
	sweetness    string
}

func newRecipe(kind Kind, title string, imagePath *string) *Recipe {
	return &Recipe{
		id:        uuid.New(),
		kind:      kind,
		title:     title,
		category:  string(kind),
		imagePath: imagePath,
	}
}

// NewMainDish creates a main dish recipe.
func NewMainDish(title string, servings int, imagePath *string) *Recipe {
	r := newRecipe(KindMainDish, title, imagePath)
	r.servings = servings
	return r
}

// NewAppetizer creates an appetizer recipe.
func NewAppetizer(title, servingStyle string, imagePath *string) *Recipe {
	r := newRecipe(KindAppetizer, title, imagePath)
	r.servingStyle = servingStyle
	return r
}

// NewDessert creates a dessert recipe.
func NewDessert(title, sweetness string, imagePath *string) *Recipe {
	r := newRecipe(KindDessert, title, imagePath)
	r.sweetness = sweetness
	return r
}

// New creates a recipe of the given kind with the default variant payload.
func New(kind Kind, title string, imagePath *string) (*Recipe, error) {
	switch kind {
	case KindMainDish:
		return NewMainDish(title, DefaultServings, imagePath), nil
	case KindAppetizer:
		return NewAppetizer(title, DefaultServingStyle, imagePath), nil
	case KindDessert:
		return NewDessert(title, DefaultSweetness, imagePath), nil
	}
	return nil, fmt.Errorf("unknown recipe kind %q", kind)
}

// ID returns the identifier assigned at construction.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Kind returns the variant discriminant.
func (r *Recipe) Kind() Kind {
	return r.kind
}

func (r *Recipe) Title() string {
	return r.title
}

func (r *Recipe) SetTitle(title string) {
	r.title = title
}

func (r *Recipe) Category() string {
	return r.category
}

// SetCategory overwrites the category label only. The variant, and with it
// the last line of Display, is left alone; use Convert to change both.
func (r *Recipe) SetCategory(category string) {
	r.category = category
}

func (r *Recipe) Instructions() string {
	return r.instructions
}

func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = instructions
}

func (r *Recipe) PersonalNotes() string {
	return r.personalNotes
}

func (r *Recipe) SetPersonalNotes(notes string) {
	r.personalNotes = notes
}

// ImagePath returns nil when the recipe has no image.
func (r *Recipe) ImagePath() *string {
	return r.imagePath
}

func (r *Recipe) SetImagePath(path *string) {
	r.imagePath = path
}

// Servings is meaningful for main dishes only.
func (r *Recipe) Servings() int {
	return r.servings
}

func (r *Recipe) SetServings(n int) {
	r.servings = n
}

func (r *Recipe) ServingStyle() string {
	return r.servingStyle
}

func (r *Recipe) SetServingStyle(style string) {
	r.servingStyle = style
}

func (r *Recipe) Sweetness() string {
	return r.sweetness
}

func (r *Recipe) SetSweetness(level string) {
	r.sweetness = level
}

// Convert switches the recipe to another variant, resetting the category
// label and the variant payload to its defaults. Converting to the current
// kind is a no-op.
func (r *Recipe) Convert(kind Kind) error {
	if _, ok := ParseKind(string(kind)); !ok {
		return fmt.Errorf("unknown recipe kind %q", kind)
	}
	if kind == r.kind {
		return nil
	}

	r.kind = kind
	r.category = string(kind)
	r.servings, r.servingStyle, r.sweetness = 0, "", ""
	switch kind {
	case KindMainDish:
		r.servings = DefaultServings
	case KindAppetizer:
		r.servingStyle = DefaultServingStyle
	case KindDessert:
		r.sweetness = DefaultSweetness
	}
	return nil
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// AddIngredient appends an ingredient. Duplicates are allowed.
func (r *Recipe) AddIngredient(ing Ingredient) {
	r.ingredients = append(r.ingredients, ing)
}

// RemoveIngredient drops every ingredient whose name matches case-insensitively.
func (r *Recipe) RemoveIngredient(name string) {
	kept := r.ingredients[:0]
	for _, ing := range r.ingredients {
		if !strings.EqualFold(ing.Name, name) {
			kept = append(kept, ing)
		}
	}
	clear(r.ingredients[len(kept):])
	r.ingredients = kept
}

// ReplaceIngredients swaps the whole ingredient list for a copy of list.
func (r *Recipe) ReplaceIngredients(list []Ingredient) {
	r.ingredients = append([]Ingredient(nil), list...)
}

// TotalCost is the sum of all ingredient prices.
func (r *Recipe) TotalCost() float64 {
	var total float64
	for _, ing := range r.ingredients {
		total += ing.Price
	}
	return total
}

// RemainingCost sums the prices of ingredients whose lower-cased name is not
// in available. Names in available are expected to be lower-cased already.
func (r *Recipe) RemainingCost(available Set) float64 {
	var remaining float64
	for _, ing := range r.ingredients {
		if available != nil && available.Contains(strings.ToLower(ing.Name)) {
			continue
		}
		remaining += ing.Price
	}
	return remaining
}

// Display renders the recipe card as plain text.
func (r *Recipe) Display() string {
	var sb strings.Builder
	sb.WriteString("Recipe: " + r.title + "\n")
	sb.WriteString("Category: " + r.category + "\n\n")
	sb.WriteString("Ingredients:\n")
	for _, ing := range r.ingredients {
		sb.WriteString("  - " + ing.String() + "\n")
	}
	sb.WriteString("\nInstructions:\n" + r.instructions)
	if r.personalNotes != "" {
		sb.WriteString("\n\nPersonal Notes:\n" + r.personalNotes)
	}

	switch r.kind {
	case KindMainDish:
		fmt.Fprintf(&sb, "\nServings: %d", r.servings)
	case KindAppetizer:
		sb.WriteString("\nServing Style: " + r.servingStyle)
	case KindDessert:
		sb.WriteString("\nSweetness Level: " + r.sweetness)
	}
	return sb.String()
}
