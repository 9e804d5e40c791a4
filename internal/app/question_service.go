// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain rules and
// persistence through ports, and knows nothing about HTTP.
package app

import (
	"context"
	"log/slog"

	"github.com/qnaboard/qna-service/internal/domain"
	"github.com/qnaboard/qna-service/internal/ports"
)

// QuestionService orchestrates question use cases.
// It depends on port interfaces, not concrete implementations.
type QuestionService struct {
	repo    ports.QuestionRepository
	textMax int
	logger  *slog.Logger
}

// QuestionServiceConfig contains dependencies for the question service.
type QuestionServiceConfig struct {
	Repo    ports.QuestionRepository
	TextMax int
	Logger  *slog.Logger
}

// NewQuestionService creates a new question service.
// A zero TextMax falls back to the domain default.
func NewQuestionService(cfg QuestionServiceConfig) *QuestionService {
	textMax := cfg.TextMax
	if textMax <= 0 {
		textMax = domain.DefaultQuestionTextMax
	}

	return &QuestionService{
		repo:    cfg.Repo,
		textMax: textMax,
		logger:  cfg.Logger,
	}
}

// List returns all questions ordered by id descending (newest first).
// Read-only; no filtering, no pagination.
func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	questions, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list questions", slog.Any("error", err))
		return nil, err
	}

	return questions, nil
}

// Create validates raw text against the question limit and persists a new
// question. On validation failure nothing is written.
func (s *QuestionService) Create(ctx context.Context, rawText string) (*domain.Question, error) {
	text, err := domain.ValidateText("text", rawText, s.textMax)
	if err != nil {
		return nil, err
	}

	question, err := s.repo.Create(ctx, text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create question", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "created question", slog.Int64("question_id", question.ID))

	return question, nil
}

// GetDetail returns the question with its full answer collection, answers
// in creation order. Returns domain.ErrNotFound for an unknown id.
func (s *QuestionService) GetDetail(ctx context.Context, id int64) (*domain.QuestionDetail, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to load question detail",
				slog.Int64("question_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	return detail, nil
}

// Delete removes the question and all its answers as one atomic unit.
// Returns domain.ErrNotFound for an unknown id.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to delete question",
				slog.Int64("question_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "deleted question", slog.Int64("question_id", id))

	return nil
}
