package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qnaboard/qna-service/internal/domain"
	"github.com/qnaboard/qna-service/internal/ports"
)

// QuestionRepo implements ports.QuestionRepository on PostgreSQL.
type QuestionRepo struct {
	db *DB
}

var _ ports.QuestionRepository = (*QuestionRepo)(nil)

// NewQuestionRepo creates a question repository backed by db.
func NewQuestionRepo(db *DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create inserts a new question and returns it with its generated
// identifier and creation timestamp.
func (r *QuestionRepo) Create(ctx context.Context, text string) (*domain.Question, error) {
	row := questionRow{Text: text}

	if err := r.db.gorm.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateError("creating question", err)
	}

	question := row.toDomain()

	return &question, nil
}

// List returns all questions, newest first.
func (r *QuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	var rows []questionRow

	if err := r.db.gorm.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, translateError("listing questions", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, rows[i].toDomain())
	}

	return questions, nil
}

// GetDetail returns a question with its answers in ascending id order.
// The answers slice is never nil.
func (r *QuestionRepo) GetDetail(ctx context.Context, id int64) (*domain.QuestionDetail, error) {
	var row questionRow

	err := r.db.gorm.WithContext(ctx).
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("answers.id ASC")
		}).
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Question", id)
		}

		return nil, translateError("loading question", err)
	}

	answers := make([]domain.Answer, 0, len(row.Answers))
	for i := range row.Answers {
		answers = append(answers, row.Answers[i].toDomain())
	}

	return &domain.QuestionDetail{
		Question: row.toDomain(),
		Answers:  answers,
	}, nil
}

// Exists reports whether a question with the given id is stored.
func (r *QuestionRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64

	err := r.db.gorm.WithContext(ctx).
		Model(&questionRow{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, translateError("checking question existence", err)
	}

	return count > 0, nil
}

// Delete removes a question and all of its answers in one transaction.
// It returns a not-found error when no question has the given id, in
// which case nothing is deleted.
func (r *QuestionRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&answerRow{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&questionRow{}, id)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return domain.NewNotFoundError("Question", id)
		}

		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}

		return translateError("deleting question", err)
	}

	return nil
}
