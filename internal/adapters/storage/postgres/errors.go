package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qnaboard/qna-service/internal/domain"
)

// translateError maps GORM/driver failures onto domain errors so callers
// never see storage internals.
func translateError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domain.NewIntegrityError(op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return domain.NewUnavailableError(op, err)
	}
}
