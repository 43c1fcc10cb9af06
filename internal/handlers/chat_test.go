package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vakilgpt-backend/internal/services"
)

type stubChatService struct {
	reply string
	err   error

	askedEmail   string
	askedMessage string
}

func (s *stubChatService) Ask(_ context.Context, email, message string) (string, error) {
	s.askedEmail = email
	s.askedMessage = message
	return s.reply, s.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func decodeReply(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.Reply
}

func TestChatHandler_Success(t *testing.T) {
	svc := &stubChatService{reply: "Yes, under Section 378..."}
	h := NewChatHandler(svc)

	rr := postChat(t, h, `{"email":"a@x.com","message":"Is theft a crime?"}`)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if got := decodeReply(t, rr); got != "Yes, under Section 378..." {
		t.Errorf("Expected model reply, got %q", got)
	}
	if svc.askedEmail != "a@x.com" || svc.askedMessage != "Is theft a crime?" {
		t.Errorf("Service called with (%q, %q)", svc.askedEmail, svc.askedMessage)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}
}

func TestChatHandler_BlankMessage(t *testing.T) {
	svc := &stubChatService{err: &services.InvalidInputError{Message: services.EmptyMessagePrompt}}
	h := NewChatHandler(svc)

	rr := postChat(t, h, `{"email":"a@x.com","message":"  "}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if got := decodeReply(t, rr); got != "Please type a question first!" {
		t.Errorf("Expected fixed prompt, got %q", got)
	}
}

func TestChatHandler_UpstreamFailure(t *testing.T) {
	svc := &stubChatService{err: &services.UpstreamError{Message: "model decommissioned"}}
	h := NewChatHandler(svc)

	rr := postChat(t, h, `{"email":"a@x.com","message":"anything"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	if got := decodeReply(t, rr); got != "Error: model decommissioned" {
		t.Errorf("Expected provider detail in reply, got %q", got)
	}
}

func TestChatHandler_MalformedBody(t *testing.T) {
	svc := &stubChatService{}
	h := NewChatHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if got := decodeReply(t, rr); got != "Please type a question first!" {
		t.Errorf("Expected fixed prompt, got %q", got)
	}
	if svc.askedMessage != "" {
		t.Error("Service must not be called for a malformed body")
	}
}
