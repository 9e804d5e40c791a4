package app

import (
	"context"
	"log/slog"

	"github.com/qnaboard/qna-service/internal/domain"
	"github.com/qnaboard/qna-service/internal/ports"
)

// AnswerService orchestrates answer use cases.
type AnswerService struct {
	answers   ports.AnswerRepository
	questions ports.QuestionRepository
	textMax   int
	logger    *slog.Logger
}

// AnswerServiceConfig contains dependencies for the answer service.
type AnswerServiceConfig struct {
	Answers   ports.AnswerRepository
	Questions ports.QuestionRepository
	TextMax   int
	Logger    *slog.Logger
}

// NewAnswerService creates a new answer service.
// A zero TextMax falls back to the domain default.
func NewAnswerService(cfg AnswerServiceConfig) *AnswerService {
	textMax := cfg.TextMax
	if textMax <= 0 {
		textMax = domain.DefaultAnswerTextMax
	}

	return &AnswerService{
		answers:   cfg.Answers,
		questions: cfg.Questions,
		textMax:   textMax,
		logger:    cfg.Logger,
	}
}

// Create persists a new answer attached to an existing question.
//
// The question existence check runs before text validation: a request
// against a nonexistent question is rejected as not-found even when the
// text is otherwise invalid.
func (s *AnswerService) Create(ctx context.Context, questionID, userID int64, rawText string) (*domain.Answer, error) {
	exists, err := s.questions.Exists(ctx, questionID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve question",
			slog.Int64("question_id", questionID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Question", questionID)
	}

	text, err := domain.ValidateText("text", rawText, s.textMax)
	if err != nil {
		return nil, err
	}

	answer, err := s.answers.Create(ctx, questionID, userID, text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create answer",
			slog.Int64("question_id", questionID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "created answer",
		slog.Int64("answer_id", answer.ID),
		slog.Int64("question_id", questionID),
		slog.Int64("user_id", userID),
	)

	return answer, nil
}

// Get returns the answer by id, or domain.ErrNotFound.
func (s *AnswerService) Get(ctx context.Context, id int64) (*domain.Answer, error) {
	answer, err := s.answers.Get(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to load answer",
				slog.Int64("answer_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	return answer, nil
}

// Delete removes the answer by id, or returns domain.ErrNotFound.
func (s *AnswerService) Delete(ctx context.Context, id int64) error {
	err := s.answers.Delete(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to delete answer",
				slog.Int64("answer_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "deleted answer", slog.Int64("answer_id", id))

	return nil
}
