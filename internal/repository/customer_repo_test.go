package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vakilgpt-backend/internal/database"
)

func newTestRepo(t *testing.T) *CustomerRepo {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewSQLiteDB("file:" + dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, "../../migrations"))

	return NewCustomerRepo(db)
}

func strPtr(s string) *string { return &s }

func TestUpsertCreatesCustomerWithFirstQuestion(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.UpsertCustomerWithQuestion(ctx, "a@x.com", "Is theft a crime?", strPtr("Yes, under Section 378..."))
	require.NoError(t, err)

	customers, err := repo.CountCustomers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, customers)

	questions, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, questions)

	records, err := repo.ListAllQuestionsNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "a@x.com", records[0].CustomerEmail)
	require.Equal(t, "Is theft a crime?", records[0].Text)
	require.NotNil(t, records[0].AIResponse)
	require.Equal(t, "Yes, under Section 378...", *records[0].AIResponse)
}

func TestUpsertSameEmailAccumulatesQuestions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "a@x.com", "first", strPtr("answer one")))
	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "a@x.com", "second", strPtr("answer two")))

	customers, err := repo.CountCustomers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, customers)

	questions, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, questions)
}

func TestUpsertStoresNullResponse(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "b@x.com", "anything", nil))

	records, err := repo.ListAllQuestionsNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Nil(t, records[0].AIResponse)
}

func TestListAllQuestionsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "a@x.com", "oldest", strPtr("1")))
	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "b@x.com", "middle", strPtr("2")))
	require.NoError(t, repo.UpsertCustomerWithQuestion(ctx, "a@x.com", "newest", strPtr("3")))

	records, err := repo.ListAllQuestionsNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "newest", records[0].Text)
	require.Equal(t, "middle", records[1].Text)
	require.Equal(t, "oldest", records[2].Text)

	for i := 1; i < len(records); i++ {
		require.False(t, records[i-1].Timestamp.Before(records[i].Timestamp),
			"records must be ordered newest first")
	}
}
