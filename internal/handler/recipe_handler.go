package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"cookbook/internal/model"
	"cookbook/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// RecipeHandler handles recipe-related HTTP requests.
type RecipeHandler struct {
	service service.RecipeService
	logger  zerolog.Logger
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(service service.RecipeService, logger zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		logger:  logger.With().Str("handler", "recipe").Logger(),
	}
}

// GetAll handles GET /api/recipes requests. Without a limit every recipe
// is returned.
func (h *RecipeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid limit parameter", h.logger)
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid offset parameter", h.logger)
		return
	}

	recipes, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve recipes", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// Search handles GET /api/recipes/search?q= requests.
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "failed to search recipes", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// GetByID handles GET /api/recipes/{id} requests.
func (h *RecipeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	rec, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve recipe", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Create handles POST /api/recipes requests.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, model.ErrInvalidJSON, "", h.logger)
		return
	}

	rec, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to create recipe", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Update handles PUT /api/recipes/{id} requests.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	var req model.RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, model.ErrInvalidJSON, "", h.logger)
		return
	}

	rec, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to update recipe", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/recipes/{id} requests.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "failed to delete recipe", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Display handles GET /api/recipes/{id}/display requests with the plain
// text rendering of a recipe.
func (h *RecipeHandler) Display(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	text, err := h.service.Display(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to display recipe", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// AddIngredient handles POST /api/recipes/{id}/ingredients requests.
func (h *RecipeHandler) AddIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	var req model.IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, model.ErrInvalidJSON, "", h.logger)
		return
	}

	rec, err := h.service.AddIngredient(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to add ingredient", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// RemoveIngredient handles DELETE /api/recipes/{id}/ingredients/{name}
// requests. Removing a name the recipe does not contain still succeeds.
func (h *RecipeHandler) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	rec, err := h.service.RemoveIngredient(r.Context(), id, mux.Vars(r)["name"])
	if err != nil {
		writeServiceError(w, r, err, "failed to remove ingredient", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Cost handles POST /api/recipes/{id}/cost requests. An empty body means
// nothing is available.
func (h *RecipeHandler) Cost(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	var req model.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(w, r, model.ErrInvalidJSON, "", h.logger)
		return
	}

	resp, err := h.service.Cost(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to calculate cost", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
