package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mediashelf/catalog-service/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Post("/users", h.CreateUser)
	r.Get("/users/{userID}", h.GetUser)

	r.Post("/works", h.CreateWork)
	r.Get("/works", h.ListWorks)
	r.Get("/works/{workID}", h.GetWork)

	r.Post("/users/{userID}/ratings", h.RateWork)
	r.Get("/users/{userID}/ratings", h.ListRatings)

	r.Get("/users/{userID}/recommendations", h.GetRecommendations)
	r.Get("/recommendations/batch", h.GetBatchRecommendations)

	r.Post("/users/{userID}/shelves", h.CreateShelf)
	r.Get("/users/{userID}/shelves", h.ListShelves)
	r.Get("/shelves/{shelfID}", h.GetShelf)
	r.Post("/shelves/{shelfID}/works", h.AddShelfWork)
	r.Delete("/shelves/{shelfID}/works/{workID}", h.RemoveShelfWork)

	r.Put("/users/{userID}/following/{followeeID}", h.Follow)
	r.Delete("/users/{userID}/following/{followeeID}", h.Unfollow)
	r.Get("/users/{userID}/following", h.Following)
	r.Get("/users/{userID}/followers", h.Followers)

	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
