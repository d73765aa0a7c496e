package trip

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/travel/message", h.HandleMessage)
	r.Post("/travel/reset", h.HandleReset)
}
