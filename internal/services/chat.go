package services

import (
	"context"
	"log"
	"strings"
)

const (
	// SystemPrompt fixes the assistant's persona and jurisdiction.
	SystemPrompt = "You are Vakil_GPT, an expert Indian Lawyer. Answer queries using Indian Laws (IPC/BNS) in simple English."

	// EmptyMessagePrompt is returned verbatim for blank questions.
	EmptyMessagePrompt = "Please type a question first!"

	// FallbackAnswer substitutes a degenerate upstream result that produced
	// no text.
	FallbackAnswer = "No answer generated."
)

type completionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type customerRepository interface {
	UpsertCustomerWithQuestion(ctx context.Context, email, text string, aiResponse *string) error
}

// ChatService orchestrates a chat request: validate, ask the model, persist
// the exchange best-effort, return the answer.
type ChatService struct {
	completion completionClient
	repo       customerRepository
}

func NewChatService(completion completionClient, repo customerRepository) *ChatService {
	return &ChatService{completion: completion, repo: repo}
}

// Ask returns the AI's answer for message. Validation and upstream failures
// short-circuit with typed errors; a persistence failure is logged and
// swallowed so the caller still receives the answer already generated.
func (s *ChatService) Ask(ctx context.Context, email, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", &InvalidInputError{Message: EmptyMessagePrompt}
	}

	log.Printf("📩 User asked: %q", message)

	aiText, err := s.completion.Complete(ctx, SystemPrompt, message)
	if err != nil {
		log.Printf("❌ Groq API error: %v", err)
		return "", &UpstreamError{Message: err.Error()}
	}
	// A null stored response marks the degenerate no-text result; the user
	// still gets the fixed fallback string.
	var stored *string
	if aiText == "" {
		aiText = FallbackAnswer
	} else {
		stored = &aiText
	}

	log.Printf("🤖 AI answered: %q", truncate(aiText, 50))

	// Best-effort: storage failure must not cost the user their answer.
	if err := s.repo.UpsertCustomerWithQuestion(ctx, email, message, stored); err != nil {
		log.Printf("⚠️ Database error: %v", err)
	}

	return aiText, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
