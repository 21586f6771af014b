package service

import (
	"context"

	"cookbook/internal/model"

	"github.com/google/uuid"
)

// RecipeService defines operations for recipe management.
type RecipeService interface {
	// GetAll retrieves recipes in insertion order. A limit <= 0 returns all.
	GetAll(ctx context.Context, limit, offset int) ([]model.Recipe, error)

	// GetByID retrieves a single recipe by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)

	// Search returns recipes whose title or category contains keyword,
	// ignoring case.
	Search(ctx context.Context, keyword string) ([]model.Recipe, error)

	// Create validates the request and adds a new recipe.
	Create(ctx context.Context, req *model.RecipeRequest) (*model.Recipe, error)

	// Update replaces the editable fields of an existing recipe.
	Update(ctx context.Context, id uuid.UUID, req *model.RecipeRequest) (*model.Recipe, error)

	// Delete removes a recipe.
	Delete(ctx context.Context, id uuid.UUID) error

	// Display renders the multi-line text block for a recipe.
	Display(ctx context.Context, id uuid.UUID) (string, error)

	// AddIngredient appends an ingredient to a recipe.
	AddIngredient(ctx context.Context, id uuid.UUID, req *model.IngredientRequest) (*model.Recipe, error)

	// RemoveIngredient removes every ingredient whose name matches, ignoring case.
	RemoveIngredient(ctx context.Context, id uuid.UUID, name string) (*model.Recipe, error)

	// Cost computes the total, remaining and saved cost given the
	// ingredients the user already has.
	Cost(ctx context.Context, id uuid.UUID, req *model.CostRequest) (*model.CostResponse, error)
}
