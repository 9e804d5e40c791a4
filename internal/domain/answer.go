package domain

import "time"

// Answer is a response record attached to exactly one Question.
// Answers are create-once: no field is mutated after creation.
type Answer struct {
	// ID is system-assigned and unique. IDs are never reused.
	ID int64

	// QuestionID references the owning Question. Required, immutable.
	QuestionID int64

	// UserID identifies the author. It is an opaque caller-supplied
	// integer with no referential check against any user store.
	UserID int64

	// Text is the answer body. Always stored trimmed and non-empty.
	Text string

	// CreatedAt is server-assigned at creation and immutable.
	CreatedAt time.Time
}
