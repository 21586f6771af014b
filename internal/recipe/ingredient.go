package recipe

import "fmt"

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string
	Quantity string
	Price    float64
}

// NewIngredient creates an ingredient. Price is not validated.
func NewIngredient(name, quantity string, price float64) Ingredient {
	return Ingredient{
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}
}

// String renders the ingredient as "{quantity} {name} - ₱{price}".
// NameFromLabel depends on this exact layout.
func (i Ingredient) String() string {
	return fmt.Sprintf("%s %s - ₱%.2f", i.Quantity, i.Name, i.Price)
}
