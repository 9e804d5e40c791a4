package dto

import (
	"time"

	"github.com/qnaboard/qna-service/internal/domain"
)

// CreateQuestionRequest is the request body for creating a question.
// Text is deliberately untagged for validation: emptiness and length are
// enforced by the domain validation layer so the rule lives in one place.
type CreateQuestionRequest struct {
	Text string `json:"text"`
}

// QuestionResponse is the HTTP representation of a question.
type QuestionResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionDetailResponse is a question together with all of its answers.
type QuestionDetailResponse struct {
	QuestionResponse
	Answers []AnswerResponse `json:"answers"`
}

// ToQuestionResponse converts a domain Question to its HTTP representation.
func ToQuestionResponse(q *domain.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:        q.ID,
		Text:      q.Text,
		CreatedAt: q.CreatedAt,
	}
}

// ToQuestionListResponse converts a slice of domain Questions.
// The result is never nil so an empty list serializes as [].
func ToQuestionListResponse(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, *ToQuestionResponse(&questions[i]))
	}

	return out
}

// ToQuestionDetailResponse converts a domain QuestionDetail.
// The answers slice is never nil so it serializes as [].
func ToQuestionDetailResponse(d *domain.QuestionDetail) *QuestionDetailResponse {
	return &QuestionDetailResponse{
		QuestionResponse: *ToQuestionResponse(&d.Question),
		Answers:          ToAnswerListResponse(d.Answers),
	}
}
