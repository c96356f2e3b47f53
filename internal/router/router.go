package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"solo-ide-backend/internal/handlers"
	"solo-ide-backend/internal/middleware"
)

// New wires the live (Gemini) backend.
func New(aiHandler *handlers.AIHandler, allowedOrigins []string) http.Handler {
	r := base(allowedOrigins)

	r.Post("/ask", aiHandler.Ask)
	r.Post("/generate", aiHandler.Generate)
	r.Post("/autocomplete", aiHandler.Autocomplete)

	return r
}

// NewMock wires the first backend version: a templated /ask and nothing else.
func NewMock(mockHandler *handlers.MockHandler, allowedOrigins []string) http.Handler {
	r := base(allowedOrigins)

	r.Post("/ask", mockHandler.Ask)

	return r
}

func base(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	// RequestID must precede Logger so access lines carry the ID
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check
	r.Get("/", handlers.Root)

	return r
}
