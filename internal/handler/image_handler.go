package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cookbook/internal/model"
	"cookbook/internal/service"
	"cookbook/internal/thumbnail"

	"github.com/rs/zerolog"
)

// ImageHandler serves scaled recipe images.
type ImageHandler struct {
	service service.RecipeService
	loader  *thumbnail.Loader
	logger  zerolog.Logger
}

// NewImageHandler creates a new image handler.
func NewImageHandler(service service.RecipeService, loader *thumbnail.Loader, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		loader:  loader,
		logger:  logger.With().Str("handler", "image").Logger(),
	}
}

// Get handles GET /api/recipes/{id}/image?width=&height= requests. A recipe
// without a readable image gets a placeholder instead of an error.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid recipe ID format", h.logger)
		return
	}

	width, err := queryInt(r, "width", 0)
	if err != nil || width < 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid width parameter", h.logger)
		return
	}

	height, err := queryInt(r, "height", 0)
	if err != nil || height < 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid height parameter", h.logger)
		return
	}

	rec, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve recipe", h.logger)
		return
	}

	img, err := h.loader.Load(rec.ImagePath, width, height)
	if errors.Is(err, thumbnail.ErrDimensionTooLarge) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, err.Error(), h.logger)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "failed to render image", h.logger)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
