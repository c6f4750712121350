package stores

import (
	"errors"
	"strings"

	"coursereview/backend/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Stores bundles the persistence interfaces used by the controllers.
type Stores struct {
	Users   UserStore
	Courses CourseStore
	Reviews ReviewStore
}

func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:   &GormUserStore{DB: db},
		Courses: &GormCourseStore{DB: db},
		Reviews: &GormReviewStore{DB: db},
	}
}

const uniqueViolation = "23505"

// isDuplicateKey reports whether err is a unique-constraint violation on a
// constraint whose name contains column. An empty column matches any.
func isDuplicateKey(err error, column string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && (column == "" || strings.Contains(pgErr.ConstraintName, column))
	}
	return column == "" && errors.Is(err, gorm.ErrDuplicatedKey)
}

// notFound maps gorm.ErrRecordNotFound onto the application sentinel.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}
