package recipe

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Manager owns an ordered collection of recipes. Insertion order is the
// order used for listing and searching. Manager is not safe for concurrent
// use; callers that share one must serialise access.
type Manager struct {
	recipes []*Recipe
}

// NewManager creates a manager seeded with the sample recipes.
func NewManager() *Manager {
	return &Manager{
		recipes: SeedRecipes(),
	}
}

// AddRecipe appends r. Recipes with identical titles may coexist.
func (m *Manager) AddRecipe(r *Recipe) {
	m.recipes = append(m.recipes, r)
}

// DeleteRecipe removes the first occurrence of r, compared by identity.
// It does nothing when r is not managed here.
func (m *Manager) DeleteRecipe(r *Recipe) {
	for i, existing := range m.recipes {
		if existing == r {
			m.recipes = slices.Delete(m.recipes, i, i+1)
			return
		}
	}
}

// AllRecipes returns a snapshot of the collection. The slice is a copy; the
// recipes themselves are shared with the manager.
func (m *Manager) AllRecipes() []*Recipe {
	out := make([]*Recipe, len(m.recipes))
	copy(out, m.recipes)
	return out
}

// SearchRecipes returns the recipes whose title or category contains keyword,
// ignoring case, in insertion order. An empty keyword matches everything.
func (m *Manager) SearchRecipes(keyword string) []*Recipe {
	kw := strings.ToLower(keyword)
	results := make([]*Recipe, 0)
	for _, r := range m.recipes {
		if strings.Contains(strings.ToLower(r.title), kw) ||
			strings.Contains(strings.ToLower(r.category), kw) {
			results = append(results, r)
		}
	}
	return results
}

// Find returns the recipe with the given id, or nil.
func (m *Manager) Find(id uuid.UUID) *Recipe {
	for _, r := range m.recipes {
		if r.id == id {
			return r
		}
	}
	return nil
}

// Len returns the number of managed recipes.
func (m *Manager) Len() int {
	return len(m.recipes)
}
