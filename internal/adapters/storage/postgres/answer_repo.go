package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qnaboard/qna-service/internal/domain"
	"github.com/qnaboard/qna-service/internal/ports"
)

// AnswerRepo implements ports.AnswerRepository on PostgreSQL.
type AnswerRepo struct {
	db *DB
}

var _ ports.AnswerRepository = (*AnswerRepo)(nil)

// NewAnswerRepo creates an answer repository backed by db.
func NewAnswerRepo(db *DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Create inserts a new answer to the given question. A foreign key
// violation means the question disappeared between the service's
// existence check and the insert, and is reported as not found.
func (r *AnswerRepo) Create(ctx context.Context, questionID, userID int64, text string) (*domain.Answer, error) {
	row := answerRow{
		QuestionID: questionID,
		UserID:     userID,
		Text:       text,
	}

	if err := r.db.gorm.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.NewNotFoundError("Question", questionID)
		}

		return nil, translateError("creating answer", err)
	}

	answer := row.toDomain()

	return &answer, nil
}

// Get returns a single answer by id.
func (r *AnswerRepo) Get(ctx context.Context, id int64) (*domain.Answer, error) {
	var row answerRow

	if err := r.db.gorm.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Answer", id)
		}

		return nil, translateError("loading answer", err)
	}

	answer := row.toDomain()

	return &answer, nil
}

// Delete removes a single answer. The parent question is untouched.
func (r *AnswerRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.gorm.WithContext(ctx).Delete(&answerRow{}, id)
	if res.Error != nil {
		return translateError("deleting answer", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("Answer", id)
	}

	return nil
}
