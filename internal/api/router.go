package api

import (
	"net/http"

	"github.com/avoronov/notes-api/internal/api/handlers"
	"github.com/avoronov/notes-api/internal/api/middleware"
	"github.com/avoronov/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	noteHandler := handlers.NewNoteHandler(services.Note)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, logger))
			r.Get("/me", authHandler.Me)
		})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, logger))

		r.Post("/", noteHandler.Create)
		r.Get("/", noteHandler.List)
		r.Get("/{noteID}", noteHandler.Get)
		r.Put("/{noteID}", noteHandler.Update)
		r.Delete("/{noteID}", noteHandler.Delete)
	})

	return r
}
