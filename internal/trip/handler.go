package trip

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleMessage — one user turn in.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
		Text   string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.UserID == "" || payload.Text == "" {
		http.Error(w, "missing user_id or text", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.HandleTurn(r.Context(), payload.UserID, payload.Text)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Sorry, I encountered an error while processing your request. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// HandleReset — clears history and profile for a user and starts fresh.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.UserID == "" {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return
	}

	h.svc.Reset(r.Context(), payload.UserID)

	writeJSON(w, http.StatusOK, map[string]string{"reply": StartPrompt})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
