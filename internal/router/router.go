package router

import (
	"net/http"

	"cookbook/internal/config"
	"cookbook/internal/handler"
	"cookbook/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	recipeHandler *handler.RecipeHandler,
	imageHandler *handler.ImageHandler,
	apiKey string,
	corsCfg config.CORSConfig,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = handler.NotFound(logger)
	r.MethodNotAllowedHandler = handler.MethodNotAllowed(logger)

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	// Routes are registered on the root router so that a method mismatch
	// reaches MethodNotAllowedHandler. search comes before {id}.
	const recipes = "/api/recipes"

	r.HandleFunc(recipes+"/search", recipeHandler.Search).Methods(http.MethodGet)

	r.HandleFunc(recipes, recipeHandler.GetAll).Methods(http.MethodGet)
	r.HandleFunc(recipes, recipeHandler.Create).Methods(http.MethodPost)

	r.HandleFunc(recipes+"/{id}", recipeHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc(recipes+"/{id}", recipeHandler.Update).Methods(http.MethodPut)
	r.HandleFunc(recipes+"/{id}", recipeHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc(recipes+"/{id}/display", recipeHandler.Display).Methods(http.MethodGet)
	r.HandleFunc(recipes+"/{id}/cost", recipeHandler.Cost).Methods(http.MethodPost)
	r.HandleFunc(recipes+"/{id}/image", imageHandler.Get).Methods(http.MethodGet)

	r.HandleFunc(recipes+"/{id}/ingredients", recipeHandler.AddIngredient).Methods(http.MethodPost)
	r.HandleFunc(recipes+"/{id}/ingredients/{name}", recipeHandler.RemoveIngredient).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-API-Key", middleware.CorrelationIDHeader},
		ExposedHeaders:   []string{middleware.CorrelationIDHeader},
		AllowCredentials: corsCfg.AllowCredentials,
	})

	// Apply middleware in order: CorrelationID -> Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = r
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = c.Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.CorrelationID(h)

	return h
}
