package api

import (
	"context"
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "okaigpt/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Chat  *ChatHandler
	Video *VideoHandler
	Tools *ToolHandler
}

// NewRouter creates the chi router with every route of the API.
func NewRouter(h Handlers, db Pinger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "database unavailable"})
			return
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/settings", h.Chat.GetSettings)
		r.Put("/settings", h.Chat.UpdateSettings)

		r.Route("/chat/sessions", func(r chi.Router) {
			r.Post("/", h.Chat.CreateSession)
			r.Get("/", h.Chat.ListSessions)
			r.Delete("/", h.Chat.ClearHistory)
			r.Patch("/{sessionID}", h.Chat.UpdateSession)
			r.Delete("/{sessionID}", h.Chat.DeleteSession)
			r.Post("/{sessionID}/messages", h.Chat.CreateMessage)
			r.Get("/{sessionID}/messages", h.Chat.ListMessages)
		})

		r.Post("/videos", h.Video.StartGeneration)
		r.Get("/videos/{videoID}", h.Video.GetStatus)
		r.Patch("/videos/{videoID}", h.Video.UpdateStatus)

		r.Post("/documents/analyze", h.Tools.AnalyzeDocument)
		r.Post("/images", h.Tools.GenerateImage)
		r.Post("/quizzes", h.Tools.GenerateQuiz)
		r.Post("/searches", h.Tools.SearchWeb)

		r.Get("/activities", h.Tools.ListActivities)
		r.Get("/activities/stats", h.Tools.GetStats)
	})

	return r
}
