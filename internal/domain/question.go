// Package domain contains core business entities and rules.
package domain

import "time"

// Question is a top-level record holding free-text content.
// It owns zero or more Answers; deleting a Question deletes them all.
type Question struct {
	// ID is system-assigned, unique and monotonically increasing
	// by creation order. IDs are never reused.
	ID int64

	// Text is the question body. Always stored trimmed and non-empty.
	Text string

	// CreatedAt is server-assigned at creation and immutable.
	CreatedAt time.Time
}

// QuestionDetail is a Question together with its currently attached answers.
// Answers holds every live answer in creation (id ascending) order and is
// never nil - a question without answers carries an empty slice.
type QuestionDetail struct {
	Question
	Answers []Answer
}
