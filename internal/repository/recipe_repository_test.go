package repository

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"cookbook/internal/model"
	"cookbook/internal/recipe"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo returns a repository over a freshly seeded manager.
func setupRepo(t *testing.T) (RecipeRepository, *recipe.Manager) {
	t.Helper()
	m := recipe.NewManager()
	return NewRecipeRepository(m, zerolog.Nop()), m
}

func recipeTitles(rs []model.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}

func TestRecipeRepository_GetAll(t *testing.T) {
	repo, _ := setupRepo(t)

	tests := []struct {
		name     string
		limit    int
		offset   int
		expected []string
	}{
		{
			name:   "No limit returns everything",
			limit:  0,
			offset: 0,
			expected: []string{
				"Chicken Adobo", "Lumpia Shanghai", "Sinigang na Baboy",
				"Pancit Canton", "Halo-Halo", "Lechon Kawali",
			},
		},
		{
			name:     "First page",
			limit:    2,
			offset:   0,
			expected: []string{"Chicken Adobo", "Lumpia Shanghai"},
		},
		{
			name:     "Second page",
			limit:    2,
			offset:   2,
			expected: []string{"Sinigang na Baboy", "Pancit Canton"},
		},
		{
			name:     "Last partial page",
			limit:    4,
			offset:   4,
			expected: []string{"Halo-Halo", "Lechon Kawali"},
		},
		{
			name:     "Offset beyond results",
			limit:    10,
			offset:   10,
			expected: []string{},
		},
		{
			name:     "Maximum limit does not overflow",
			limit:    math.MaxInt,
			offset:   4,
			expected: []string{"Halo-Halo", "Lechon Kawali"},
		},
		{
			name:     "Negative offset treated as zero",
			limit:    1,
			offset:   -3,
			expected: []string{"Chicken Adobo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := repo.GetAll(context.Background(), tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, recipeTitles(recipes))
		})
	}
}

func TestRecipeRepository_GetByID(t *testing.T) {
	repo, m := setupRepo(t)
	target := m.AllRecipes()[4]

	tests := []struct {
		name      string
		id        uuid.UUID
		expectNil bool
	}{
		{name: "Recipe exists", id: target.ID(), expectNil: false},
		{name: "Recipe does not exist", id: uuid.New(), expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "Halo-Halo", got.Title)
			assert.Equal(t, "Dessert", got.Category)
			require.NotNil(t, got.Sweetness)
			assert.Equal(t, "Medium Sweet", *got.Sweetness)
			assert.Nil(t, got.Servings)
			assert.Len(t, got.Ingredients, 9)
		})
	}
}

func TestRecipeRepository_Search(t *testing.T) {
	repo, _ := setupRepo(t)

	results, err := repo.Search(context.Background(), "APPETIZER")

	require.NoError(t, err)
	assert.Equal(t, []string{"Lumpia Shanghai"}, recipeTitles(results))
}

func TestRecipeRepository_CreateAndDelete(t *testing.T) {
	repo, m := setupRepo(t)
	ctx := context.Background()

	r := recipe.NewDessert("Leche Flan", "Very Sweet", nil)
	created, err := repo.Create(ctx, r)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, r.ID(), created.ID)
	assert.Equal(t, 7, m.Len())

	deleted, err := repo.Delete(ctx, r.ID())
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 6, m.Len())

	deleted, err = repo.Delete(ctx, r.ID())
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Create(ctx, nil)
	assert.Error(t, err)
}

func TestRecipeRepository_Update(t *testing.T) {
	repo, m := setupRepo(t)
	ctx := context.Background()
	target := m.AllRecipes()[0]

	t.Run("Mutation is applied and returned", func(t *testing.T) {
		updated, err := repo.Update(ctx, target.ID(), func(r *recipe.Recipe) error {
			r.AddIngredient(recipe.NewIngredient("Sugar", "1 tbsp", 2))
			return nil
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Len(t, updated.Ingredients, 7)
		assert.Len(t, target.Ingredients(), 7)
	})

	t.Run("Callback error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		updated, err := repo.Update(ctx, target.ID(), func(r *recipe.Recipe) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, updated)
	})

	t.Run("Unknown recipe", func(t *testing.T) {
		called := false
		updated, err := repo.Update(ctx, uuid.New(), func(r *recipe.Recipe) error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.Nil(t, updated)
		assert.False(t, called)
	})
}

func TestRecipeRepository_View(t *testing.T) {
	repo, m := setupRepo(t)
	ctx := context.Background()
	target := m.AllRecipes()[0]

	var total float64
	found, err := repo.View(ctx, target.ID(), func(r *recipe.Recipe) error {
		total = r.TotalCost()
		return nil
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 243.0, total, 1e-9)

	found, err = repo.View(ctx, uuid.New(), func(r *recipe.Recipe) error { return nil })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRecipeRepository_CancelledContext(t *testing.T) {
	repo, m := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAll(ctx, 0, 0)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Create(ctx, recipe.NewMainDish("Late", 1, nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 6, m.Len())
}

func TestRecipeRepository_ConcurrentAccess(t *testing.T) {
	repo, m := setupRepo(t)
	ctx := context.Background()
	target := m.AllRecipes()[0].ID()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, recipe.NewMainDish("Concurrent", 1, nil))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, target, func(r *recipe.Recipe) error {
				r.AddIngredient(recipe.NewIngredient("Salt", "1 tsp", 1))
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.GetAll(ctx, 0, 0)
			_, _ = repo.Search(ctx, "concurrent")
		}()
	}
	wg.Wait()

	assert.Equal(t, 26, m.Len())
	got, err := repo.GetByID(ctx, target)
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 26)
}
