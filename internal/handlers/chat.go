package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"vakilgpt-backend/internal/models"
	"vakilgpt-backend/internal/services"
)

type chatService interface {
	Ask(ctx context.Context, email, message string) (string, error)
}

type ChatHandler struct {
	chatService chatService
}

func NewChatHandler(chatService chatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unparseable body carries no message; same outcome as a blank one.
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: services.EmptyMessagePrompt})
		return
	}

	reply, err := h.chatService.Ask(r.Context(), req.Email, req.Message)
	if err != nil {
		handleChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func handleChatError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.InvalidInputError:
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: e.Message})
	case *services.UpstreamError:
		writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Reply: "Error: " + e.Message})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Reply: "Error: " + err.Error()})
	}
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
