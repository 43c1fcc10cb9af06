package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"vakilgpt-backend/internal/models"
)

type CustomerRepo struct {
	db *sql.DB
}

func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// UpsertCustomerWithQuestion attaches a new question to the customer with the
// given email, creating the customer (with a placeholder name) and the first
// question in one transaction when the email has not been seen before.
func (r *CustomerRepo) UpsertCustomerWithQuestion(ctx context.Context, email, text string, aiResponse *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The no-op DO UPDATE makes RETURNING yield the existing row's id on
	// conflict, so one statement covers both the insert and the lookup.
	var customerID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (id, email, name)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET email = excluded.email
		RETURNING id`,
		uuid.New().String(), email, models.PlaceholderName,
	).Scan(&customerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO questions (id, customer_id, text, ai_response, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), customerID, text, aiResponse, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CustomerRepo) ListAllQuestionsNewestFirst(ctx context.Context) ([]models.QuestionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT q.timestamp, c.email, q.text, q.ai_response
		FROM questions q
		JOIN customers c ON c.id = q.customer_id
		ORDER BY q.timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.QuestionRecord, 0)
	for rows.Next() {
		var rec models.QuestionRecord
		if scanErr := rows.Scan(&rec.Timestamp, &rec.CustomerEmail, &rec.Text, &rec.AIResponse); scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *CustomerRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&n)
	return n, err
}

func (r *CustomerRepo) CountQuestions(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&n)
	return n, err
}
