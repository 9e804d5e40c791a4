package postgres

import (
	"time"

	"github.com/qnaboard/qna-service/internal/domain"
)

type questionRow struct {
	ID        int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Text      string      `gorm:"column:text;type:text;not null"`
	CreatedAt time.Time   `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
	Answers   []answerRow `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (questionRow) TableName() string {
	return "questions"
}

func (r *questionRow) toDomain() domain.Question {
	return domain.Question{
		ID:        r.ID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

type answerRow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	QuestionID int64     `gorm:"column:question_id;not null;index"`
	UserID     int64     `gorm:"column:user_id;not null"`
	Text       string    `gorm:"column:text;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
}

func (answerRow) TableName() string {
	return "answers"
}

func (r *answerRow) toDomain() domain.Answer {
	return domain.Answer{
		ID:         r.ID,
		QuestionID: r.QuestionID,
		UserID:     r.UserID,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}
