package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 组装 API、健康检查和静态文件。webDir 为空时不挂静态文件。
func NewRouter(h *Handler, webDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/new_game", h.handleNewGame)
		r.Post("/state", h.handleState)
		r.Post("/legal_moves", h.handleLegalMoves)
		r.Post("/play", h.handlePlay)
		r.Post("/reset", h.handleReset)
		r.Get("/ws", h.handleWS)
	})

	if webDir != "" {
		mountStatic(r, webDir)
	}
	return r
}
