package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderName is assigned to customers created on their first chat.
const PlaceholderName = "New Customer"

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Text       string    `json:"text"`
	AIResponse *string   `json:"ai_response"`
	Timestamp  time.Time `json:"timestamp"`
}

// QuestionRecord is one row of the admin listing: a question joined with
// its owning customer's email.
type QuestionRecord struct {
	Timestamp     time.Time
	CustomerEmail string
	Text          string
	AIResponse    *string
}
