package repository

import (
	"context"

	"cookbook/internal/model"
	"cookbook/internal/recipe"

	"github.com/google/uuid"
)

// RecipeRepository defines the interface for recipe data access operations.
// Reads return snapshots taken under the store's lock; domain recipes are
// only reachable inside View and Update callbacks.
type RecipeRepository interface {
	// GetAll retrieves recipes in insertion order. A limit <= 0 returns
	// everything from offset on.
	GetAll(ctx context.Context, limit, offset int) ([]model.Recipe, error)

	// GetByID retrieves a single recipe by its ID, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)

	// Search returns recipes whose title or category contains keyword.
	Search(ctx context.Context, keyword string) ([]model.Recipe, error)

	// Create appends a recipe and returns its snapshot.
	Create(ctx context.Context, r *recipe.Recipe) (*model.Recipe, error)

	// Update runs fn against the recipe with the given ID while holding the
	// write lock and returns the resulting snapshot, or nil if the recipe
	// does not exist.
	Update(ctx context.Context, id uuid.UUID, fn func(r *recipe.Recipe) error) (*model.Recipe, error)

	// View runs fn against the recipe with the given ID while holding the
	// read lock. It returns false if the recipe does not exist.
	View(ctx context.Context, id uuid.UUID, fn func(r *recipe.Recipe) error) (bool, error)

	// Delete removes the recipe with the given ID. It returns false if the
	// recipe did not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
