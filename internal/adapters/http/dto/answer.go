package dto

import (
	"time"

	"github.com/qnaboard/qna-service/internal/domain"
)

// CreateAnswerRequest is the request body for answering a question.
// Both fields are pointers so that an absent field fails `required` at
// binding, before any repository access: an explicit zero remains a
// valid opaque caller id, and an explicit empty string reaches the
// domain validation layer, which owns the content rules (trim,
// emptiness, length).
type CreateAnswerRequest struct {
	UserID *int64  `json:"user_id" validate:"required"`
	Text   *string `json:"text"    validate:"required"`
}

// AnswerResponse is the HTTP representation of an answer.
type AnswerResponse struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToAnswerResponse converts a domain Answer to its HTTP representation.
func ToAnswerResponse(a *domain.Answer) *AnswerResponse {
	return &AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		UserID:     a.UserID,
		Text:       a.Text,
		CreatedAt:  a.CreatedAt,
	}
}

// ToAnswerListResponse converts a slice of domain Answers.
// The result is never nil so an empty collection serializes as [].
func ToAnswerListResponse(answers []domain.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		out = append(out, *ToAnswerResponse(&answers[i]))
	}

	return out
}
