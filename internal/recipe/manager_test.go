package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(recipes []*Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Title())
	}
	return out
}

func TestNewManager_Seeds(t *testing.T) {
	m := NewManager()

	all := m.AllRecipes()
	require.Len(t, all, 6)
	assert.Equal(t, []string{
		"Chicken Adobo",
		"Lumpia Shanghai",
		"Sinigang na Baboy",
		"Pancit Canton",
		"Halo-Halo",
		"Lechon Kawali",
	}, titles(all))

	kinds := map[Kind]int{}
	for _, r := range all {
		kinds[r.Kind()]++
		assert.Equal(t, string(r.Kind()), r.Category())
		assert.NotNil(t, r.ImagePath())
		assert.NotEmpty(t, r.Ingredients())
	}
	assert.Equal(t, map[Kind]int{KindMainDish: 4, KindAppetizer: 1, KindDessert: 1}, kinds)
}

func TestNewManager_IndependentInstances(t *testing.T) {
	a := NewManager()
	b := NewManager()

	a.AllRecipes()[0].AddIngredient(NewIngredient("Sugar", "1 tbsp", 2))
	a.DeleteRecipe(a.AllRecipes()[1])

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 6, b.Len())
	assert.Len(t, b.AllRecipes()[0].Ingredients(), 6)
}

func TestManager_AllRecipesSnapshot(t *testing.T) {
	m := NewManager()

	snapshot := m.AllRecipes()
	snapshot = append(snapshot, NewDessert("Leche Flan", "Sweet", nil))
	snapshot[0] = nil

	after := m.AllRecipes()
	require.Len(t, after, 6)
	assert.NotNil(t, after[0])

	// The recipes are shared, so mutating one is visible through the manager.
	after[0].AddIngredient(NewIngredient("Sugar", "1 tbsp", 2))
	assert.Len(t, m.AllRecipes()[0].Ingredients(), 7)
}

func TestManager_AddAndDelete(t *testing.T) {
	m := NewManager()
	before := m.AllRecipes()

	r := NewMainDish("Test", 2, nil)
	m.AddRecipe(r)
	require.Equal(t, 7, m.Len())
	assert.Same(t, r, m.AllRecipes()[6])

	m.DeleteRecipe(r)
	assert.Equal(t, before, m.AllRecipes())

	// Deleting again, or deleting a recipe never added, is a no-op.
	m.DeleteRecipe(r)
	m.DeleteRecipe(NewMainDish("Stranger", 1, nil))
	assert.Equal(t, before, m.AllRecipes())
}

func TestManager_DeleteByIdentity(t *testing.T) {
	m := NewManager()
	first := NewDessert("Twin", "Low", nil)
	second := NewDessert("Twin", "Low", nil)
	m.AddRecipe(first)
	m.AddRecipe(second)

	m.DeleteRecipe(second)

	all := m.AllRecipes()
	require.Len(t, all, 7)
	assert.Same(t, first, all[6])
}

func TestManager_DuplicateTitles(t *testing.T) {
	m := NewManager()
	m.AddRecipe(NewMainDish("Chicken Adobo", 2, nil))

	assert.Len(t, m.SearchRecipes("chicken adobo"), 2)
}

func TestManager_SearchRecipes(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name     string
		keyword  string
		expected []string
	}{
		{
			name:    "Empty keyword matches all in order",
			keyword: "",
			expected: []string{
				"Chicken Adobo", "Lumpia Shanghai", "Sinigang na Baboy",
				"Pancit Canton", "Halo-Halo", "Lechon Kawali",
			},
		},
		{
			name:     "Title match ignores case",
			keyword:  "PANCIT",
			expected: []string{"Pancit Canton"},
		},
		{
			name:     "Category match ignores case",
			keyword:  "dessert",
			expected: []string{"Halo-Halo"},
		},
		{
			name:     "Category substring",
			keyword:  "main",
			expected: []string{"Chicken Adobo", "Sinigang na Baboy", "Pancit Canton", "Lechon Kawali"},
		},
		{
			name:     "Substring across title and category",
			keyword:  "an",
			expected: []string{"Lumpia Shanghai", "Sinigang na Baboy", "Pancit Canton"},
		},
		{
			name:     "No match",
			keyword:  "sushi",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titles(m.SearchRecipes(tt.keyword)))
		})
	}
}

func TestManager_Find(t *testing.T) {
	m := NewManager()
	target := m.AllRecipes()[3]

	assert.Same(t, target, m.Find(target.ID()))
	assert.Nil(t, m.Find(uuid.New()))
}

func TestEndToEnd_CostScenario(t *testing.T) {
	m := NewManager()

	r := NewMainDish("Test", 2, nil)
	r.AddIngredient(NewIngredient("Garlic", "8 cloves", 10.00))
	r.AddIngredient(NewIngredient("Chicken", "1 kg", 180.00))
	m.AddRecipe(r)

	assert.Equal(t, 190.00, r.TotalCost())
	assert.Equal(t, 10.00, r.RemainingCost(NewNameSet("chicken")))
}
