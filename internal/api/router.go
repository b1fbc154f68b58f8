package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mkj/summerhouse-voting/internal/api/handlers"
	"github.com/mkj/summerhouse-voting/internal/api/middleware"
	"github.com/mkj/summerhouse-voting/internal/config"
	"github.com/mkj/summerhouse-voting/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.User, cfg)
	summerHouseHandler := handlers.NewSummerHouseHandler(services.Vote)
	voteHandler := handlers.NewVoteHandler(services.Vote)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Post("/check", userHandler.Check)
			r.Post("/login", userHandler.Login)
			r.Delete("/", userHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession)
				r.Get("/", userHandler.Me)
			})
		})

		r.Get("/summer-houses", summerHouseHandler.GetAll)
		r.Get("/results", summerHouseHandler.GetResults)

		r.Route("/votes", func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Post("/", voteHandler.Cast)
			r.Delete("/", voteHandler.Retract)
		})
	})

	return r
}
