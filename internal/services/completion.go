package services

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// CompletionService calls Groq's OpenAI-compatible chat-completions API.
type CompletionService struct {
	client *openai.Client
	model  string
}

func NewCompletionService(apiKey, baseURL, model string) *CompletionService {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL

	return &CompletionService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Complete sends a single user turn under the given system prompt and returns
// the first choice's text. An empty text is returned as-is; the caller decides
// on a fallback.
func (s *CompletionService) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
