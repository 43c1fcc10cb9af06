package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ChatResponse is the reply from the AI chat. Error outcomes reuse the same
// shape with the detail embedded in Reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
