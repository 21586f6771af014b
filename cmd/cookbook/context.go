package main

import (
	"context"
	"fmt"
	"io"

	"cookbook/internal/config"
	"cookbook/internal/model"
	"cookbook/internal/recipe"
	"cookbook/internal/repository"
	"cookbook/internal/service"

	"github.com/rs/zerolog"
)

// commandContext lazily builds the recipe service shared by subcommands.
type commandContext struct {
	logLevel *string
	plain    *bool

	svc service.RecipeService
}

func newCommandContext(logLevel *string, plain *bool) *commandContext {
	return &commandContext{logLevel: logLevel, plain: plain}
}

func (c *commandContext) service(stderr io.Writer) service.RecipeService {
	if c.svc != nil {
		return c.svc
	}
	logger := config.NewLoggerTo(stderr, config.LoggerConfig{Level: *c.logLevel, Format: "console"})
	c.svc = newRecipeService(logger)
	return c.svc
}

func newRecipeService(logger zerolog.Logger) service.RecipeService {
	repo := repository.NewRecipeRepository(recipe.NewManager(), logger)
	return service.NewRecipeService(repo, logger)
}

// recipeAt resolves a 1-based position in the recipe list.
func recipeAt(ctx context.Context, svc service.RecipeService, n int) (*model.Recipe, error) {
	recipes, err := svc.GetAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(recipes) {
		return nil, fmt.Errorf("recipe %d does not exist (have %d)", n, len(recipes))
	}
	return &recipes[n-1], nil
}
