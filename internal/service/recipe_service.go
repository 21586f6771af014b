package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cookbook/internal/model"
	"cookbook/internal/recipe"
	"cookbook/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// recipeValidate is shared by every recipeService; custom tags are
// registered once in init.
var recipeValidate *validator.Validate

func init() {
	recipeValidate = validator.New()
	_ = recipeValidate.RegisterValidation("notblank", validateNotBlank)
	_ = recipeValidate.RegisterValidation("category", validateCategory)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := recipe.ParseKind(fl.Field().String())
	return ok
}

// recipeService implements RecipeService.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	logger     zerolog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipeRepo repository.RecipeRepository, logger zerolog.Logger) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		logger:     logger.With().Str("service", "recipe").Logger(),
	}
}

// GetAll retrieves recipes with pagination.
func (s *recipeService) GetAll(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	recipes, err := s.recipeRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all recipes")
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}

	s.logger.Debug().
		Int("count", len(recipes)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved recipes")

	return recipes, nil
}

// GetByID retrieves a single recipe by ID.
func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("recipe_id", id.String()).Msg("failed to get recipe by ID")
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if rec == nil {
		s.logger.Debug().Str("recipe_id", id.String()).Msg("recipe not found")
		return nil, model.ErrRecipeNotFound
	}

	return rec, nil
}

// Search returns recipes matching keyword. An empty keyword matches all.
func (s *recipeService) Search(ctx context.Context, keyword string) ([]model.Recipe, error) {
	recipes, err := s.recipeRepo.Search(ctx, keyword)
	if err != nil {
		s.logger.Error().Err(err).Str("keyword", keyword).Msg("failed to search recipes")
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	s.logger.Debug().
		Str("keyword", keyword).
		Int("count", len(recipes)).
		Msg("searched recipes")

	return recipes, nil
}

// Create validates the request and adds a new recipe.
func (s *recipeService) Create(ctx context.Context, req *model.RecipeRequest) (*model.Recipe, error) {
	kind, err := s.validateRecipeRequest(req)
	if err != nil {
		return nil, err
	}

	rec, err := recipe.New(kind, strings.TrimSpace(req.Title), req.ImagePath)
	if err != nil {
		return nil, model.ErrInvalidCategory
	}
	applyRecipeRequest(rec, req)

	created, err := s.recipeRepo.Create(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("title", rec.Title()).Msg("failed to create recipe")
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.logger.Info().
		Str("recipe_id", created.ID.String()).
		Str("category", created.Category).
		Int("ingredient_count", len(created.Ingredients)).
		Msg("recipe created successfully")

	return created, nil
}

// Update replaces title, category, image, instructions, notes, variant
// payload and ingredient list. Changing the category converts the variant.
func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req *model.RecipeRequest) (*model.Recipe, error) {
	kind, err := s.validateRecipeRequest(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.recipeRepo.Update(ctx, id, func(r *recipe.Recipe) error {
		if err := r.Convert(kind); err != nil {
			return model.ErrInvalidCategory
		}
		r.SetTitle(strings.TrimSpace(req.Title))
		r.SetImagePath(req.ImagePath)
		applyRecipeRequest(r, req)
		return nil
	})
	if err != nil {
		return nil, s.wrapRepoError(err, id, "failed to update recipe")
	}
	if updated == nil {
		return nil, model.ErrRecipeNotFound
	}

	s.logger.Info().Str("recipe_id", id.String()).Msg("recipe updated successfully")
	return updated, nil
}

// Delete removes a recipe.
func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.recipeRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("recipe_id", id.String()).Msg("failed to delete recipe")
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if !deleted {
		return model.ErrRecipeNotFound
	}

	s.logger.Info().Str("recipe_id", id.String()).Msg("recipe deleted successfully")
	return nil
}

// Display renders the recipe's text block.
func (s *recipeService) Display(ctx context.Context, id uuid.UUID) (string, error) {
	var text string
	found, err := s.recipeRepo.View(ctx, id, func(r *recipe.Recipe) error {
		text = r.Display()
		return nil
	})
	if err != nil {
		return "", s.wrapRepoError(err, id, "failed to display recipe")
	}
	if !found {
		return "", model.ErrRecipeNotFound
	}
	return text, nil
}

// AddIngredient appends an ingredient. Duplicates are allowed.
func (s *recipeService) AddIngredient(ctx context.Context, id uuid.UUID, req *model.IngredientRequest) (*model.Recipe, error) {
	if req == nil {
		return nil, model.ErrInvalidJSON
	}

	updated, err := s.recipeRepo.Update(ctx, id, func(r *recipe.Recipe) error {
		r.AddIngredient(req.ToIngredient())
		return nil
	})
	if err != nil {
		return nil, s.wrapRepoError(err, id, "failed to add ingredient")
	}
	if updated == nil {
		return nil, model.ErrRecipeNotFound
	}

	s.logger.Debug().
		Str("recipe_id", id.String()).
		Str("ingredient", req.Name).
		Msg("ingredient added")
	return updated, nil
}

// RemoveIngredient removes all ingredients named name. Removing a name that
// is not present leaves the recipe unchanged.
func (s *recipeService) RemoveIngredient(ctx context.Context, id uuid.UUID, name string) (*model.Recipe, error) {
	updated, err := s.recipeRepo.Update(ctx, id, func(r *recipe.Recipe) error {
		r.RemoveIngredient(name)
		return nil
	})
	if err != nil {
		return nil, s.wrapRepoError(err, id, "failed to remove ingredient")
	}
	if updated == nil {
		return nil, model.ErrRecipeNotFound
	}

	s.logger.Debug().
		Str("recipe_id", id.String()).
		Str("ingredient", name).
		Msg("ingredient removed")
	return updated, nil
}

// Cost combines the index, label and name selectors into one availability
// set and prices the recipe against it.
func (s *recipeService) Cost(ctx context.Context, id uuid.UUID, req *model.CostRequest) (*model.CostResponse, error) {
	if req == nil {
		req = &model.CostRequest{}
	}

	resp := &model.CostResponse{RecipeID: id}
	found, err := s.recipeRepo.View(ctx, id, func(r *recipe.Recipe) error {
		byIndex, err := recipe.AvailableFromIndexes(r, req.AvailableIndexes)
		if err != nil {
			return model.NewDomainError(model.ErrCodeInvalidIngredientIndex, err.Error())
		}

		available := recipe.Union(
			byIndex,
			recipe.AvailableFromLabels(req.AvailableLabels),
			recipe.AvailableFromNames(req.AvailableNames),
		)
		costs := recipe.Costs(r, available)
		resp.Total = costs.Total
		resp.Remaining = costs.Remaining
		resp.Saved = costs.Saved

		ings := r.Ingredients()
		resp.Ingredients = make([]string, len(ings))
		for i, ing := range ings {
			resp.Ingredients[i] = ing.String()
		}
		return nil
	})
	if err != nil {
		return nil, s.wrapRepoError(err, id, "failed to calculate cost")
	}
	if !found {
		return nil, model.ErrRecipeNotFound
	}

	s.logger.Debug().
		Str("recipe_id", id.String()).
		Float64("total", resp.Total).
		Float64("remaining", resp.Remaining).
		Msg("calculated recipe cost")
	return resp, nil
}

// validateRecipeRequest checks the title and category and returns the
// parsed variant kind.
func (s *recipeService) validateRecipeRequest(req *model.RecipeRequest) (recipe.Kind, error) {
	if req == nil {
		return "", model.ErrInvalidJSON
	}

	if err := recipeValidate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.logger.Warn().
				Str("field", verrs[0].Field()).
				Str("tag", verrs[0].Tag()).
				Msg("recipe validation failed")
			switch verrs[0].Tag() {
			case "notblank":
				return "", model.ErrMissingTitle
			case "category":
				return "", model.ErrInvalidCategory
			}
		}
		return "", model.NewDomainError(model.ErrCodeInvalidRequest, err.Error())
	}

	kind, _ := recipe.ParseKind(req.Category)
	return kind, nil
}

// wrapRepoError passes domain errors through and wraps everything else.
func (s *recipeService) wrapRepoError(err error, id uuid.UUID, msg string) error {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		s.logger.Warn().Err(err).Str("recipe_id", id.String()).Msg(msg)
		return err
	}
	s.logger.Error().Err(err).Str("recipe_id", id.String()).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// applyRecipeRequest copies the free-text fields, the variant payload and
// the ingredient list onto r. Variant fields that do not belong to r's kind
// are ignored.
func applyRecipeRequest(r *recipe.Recipe, req *model.RecipeRequest) {
	r.SetInstructions(req.Instructions)
	r.SetPersonalNotes(req.PersonalNotes)

	switch r.Kind() {
	case recipe.KindMainDish:
		if req.Servings != nil {
			r.SetServings(*req.Servings)
		}
	case recipe.KindAppetizer:
		if req.ServingStyle != nil {
			r.SetServingStyle(*req.ServingStyle)
		}
	case recipe.KindDessert:
		if req.Sweetness != nil {
			r.SetSweetness(*req.Sweetness)
		}
	}

	ings := make([]recipe.Ingredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ings[i] = ing.ToIngredient()
	}
	r.ReplaceIngredients(ings)
}
