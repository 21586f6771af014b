package repository

import (
	"context"
	"fmt"
	"sync"

	"cookbook/internal/model"
	"cookbook/internal/recipe"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// recipeRepository implements RecipeRepository over an in-memory
// recipe.Manager. The manager and the recipes it owns form one mutable
// resource, so every call holds mu for its whole duration.
type recipeRepository struct {
	mu      sync.RWMutex
	manager *recipe.Manager
	logger  zerolog.Logger
}

// NewRecipeRepository creates a repository backed by manager.
func NewRecipeRepository(manager *recipe.Manager, logger zerolog.Logger) RecipeRepository {
	return &recipeRepository{
		manager: manager,
		logger:  logger.With().Str("repository", "recipe").Logger(),
	}
}

// GetAll retrieves recipes with pagination support.
func (r *recipeRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.manager.AllRecipes()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []model.Recipe{}, nil
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}

	r.logger.Debug().
		Int("limit", limit).
		Int("offset", offset).
		Int("total", len(all)).
		Msg("listed recipes")

	return model.NewRecipes(all[offset:end]), nil
}

// GetByID retrieves a single recipe by its ID.
func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := r.manager.Find(id)
	if found == nil {
		r.logger.Debug().Str("recipe_id", id.String()).Msg("recipe not found")
		return nil, nil
	}

	snapshot := model.NewRecipe(found)
	return &snapshot, nil
}

// Search returns recipes whose title or category contains keyword.
func (r *recipeRepository) Search(ctx context.Context, keyword string) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.manager.SearchRecipes(keyword)

	r.logger.Debug().
		Str("keyword", keyword).
		Int("matches", len(results)).
		Msg("searched recipes")

	return model.NewRecipes(results), nil
}

// Create appends a recipe.
func (r *recipeRepository) Create(ctx context.Context, rec *recipe.Recipe) (*model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("recipe is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.manager.AddRecipe(rec)

	r.logger.Debug().
		Str("recipe_id", rec.ID().String()).
		Str("title", rec.Title()).
		Int("total", r.manager.Len()).
		Msg("recipe created successfully")

	snapshot := model.NewRecipe(rec)
	return &snapshot, nil
}

// Update runs fn against a recipe under the write lock.
func (r *recipeRepository) Update(ctx context.Context, id uuid.UUID, fn func(*recipe.Recipe) error) (*model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	found := r.manager.Find(id)
	if found == nil {
		r.logger.Debug().Str("recipe_id", id.String()).Msg("recipe not found")
		return nil, nil
	}

	if err := fn(found); err != nil {
		r.logger.Warn().Err(err).Str("recipe_id", id.String()).Msg("failed to update recipe")
		return nil, err
	}

	r.logger.Debug().Str("recipe_id", id.String()).Msg("recipe updated successfully")

	snapshot := model.NewRecipe(found)
	return &snapshot, nil
}

// View runs fn against a recipe under the read lock.
func (r *recipeRepository) View(ctx context.Context, id uuid.UUID, fn func(*recipe.Recipe) error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := r.manager.Find(id)
	if found == nil {
		r.logger.Debug().Str("recipe_id", id.String()).Msg("recipe not found")
		return false, nil
	}
	return true, fn(found)
}

// Delete removes the recipe with the given ID.
func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	found := r.manager.Find(id)
	if found == nil {
		r.logger.Debug().Str("recipe_id", id.String()).Msg("recipe not found")
		return false, nil
	}
	r.manager.DeleteRecipe(found)

	r.logger.Debug().
		Str("recipe_id", id.String()).
		Int("remaining", r.manager.Len()).
		Msg("recipe deleted successfully")

	return true, nil
}
