// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port design principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never storage models or DTOs
//   - Error returns use domain error types (ErrNotFound, ErrIntegrity, ...)
package ports

import (
	"context"

	"github.com/qnaboard/qna-service/internal/domain"
)

// QuestionRepository persists questions.
// Every method executes within one scoped unit of work bound to the
// provided context; implementations release the session on every exit
// path, including errors.
type QuestionRepository interface {
	// Create persists a new question with server-assigned id and
	// created_at, and returns the stored entity.
	Create(ctx context.Context, text string) (*domain.Question, error)

	// List returns all questions ordered by id descending (newest first).
	List(ctx context.Context) ([]domain.Question, error)

	// GetDetail returns a question with all its answers in creation order.
	// Returns domain.ErrNotFound if the question does not exist.
	GetDetail(ctx context.Context, id int64) (*domain.QuestionDetail, error)

	// Exists reports whether the question exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the question and, atomically within the same
	// transaction, every answer referencing it.
	// Returns domain.ErrNotFound if the question does not exist.
	Delete(ctx context.Context, id int64) error
}

// AnswerRepository persists answers.
type AnswerRepository interface {
	// Create persists a new answer bound to questionID with
	// server-assigned id and created_at, and returns the stored entity.
	// Returns domain.ErrNotFound if the question vanished between the
	// existence check and the write (the FK constraint is the backstop).
	Create(ctx context.Context, questionID, userID int64, text string) (*domain.Answer, error)

	// Get returns the answer by id.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*domain.Answer, error)

	// Delete removes the answer by id.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
