package stores

import (
	"context"
	"strings"

	"coursereview/backend/apperrors"
	"coursereview/backend/models"
	"coursereview/backend/utils"

	"gorm.io/gorm"
)

// CourseStore abstracts catalog persistence and search.
type CourseStore interface {
	// Create persists c. A taken code yields ErrCourseExists.
	Create(ctx context.Context, c *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	// Search returns one page of courses matching every non-empty facet,
	// ordered by id. Pages outside the result are empty, not errors.
	Search(ctx context.Context, f models.CourseFilter, page, pageSize int) (*models.CoursePage, error)
	All(ctx context.Context) ([]models.Course, error)
	Count(ctx context.Context) (int64, error)
}

type GormCourseStore struct{ DB *gorm.DB }

func (s *GormCourseStore) Create(ctx context.Context, c *models.Course) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if taken, err := exists(tx, &models.Course{}, "code = ?", c.Code); err != nil {
			return err
		} else if taken {
			return apperrors.ErrCourseExists
		}
		return tx.Create(c).Error
	})
	if isDuplicateKey(err, "") {
		return apperrors.ErrCourseExists
	}
	return err
}

func (s *GormCourseStore) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var c models.Course
	if err := s.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "Course not found")
	}
	return &c, nil
}

func (s *GormCourseStore) Search(ctx context.Context, f models.CourseFilter, page, pageSize int) (*models.CoursePage, error) {
	var total int64
	if err := ApplyCourseFilter(s.DB.WithContext(ctx).Model(&models.Course{}), f).Count(&total).Error; err != nil {
		return nil, err
	}

	result := newCoursePage(page, pageSize, total)

	offset, ok := utils.PageWindow(page, pageSize, total)
	if !ok {
		return result, nil
	}

	err := ApplyCourseFilter(s.DB.WithContext(ctx).Model(&models.Course{}), f).
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&result.Items).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *GormCourseStore) All(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (s *GormCourseStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Course{}).Count(&n).Error
	return n, err
}

// ApplyCourseFilter narrows q to courses matching every non-empty facet of f.
// The free-text query is a case-sensitive substring match on code or name.
func ApplyCourseFilter(q *gorm.DB, f models.CourseFilter) *gorm.DB {
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		q = q.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if f.LanguageRequirement != "" {
		q = q.Where("language_requirement = ?", f.LanguageRequirement)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func newCoursePage(page, pageSize int, total int64) *models.CoursePage {
	p := &models.CoursePage{
		Items: []models.Course{},
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: utils.TotalPages(total, pageSize),
		},
	}
	p.HasPrev = page > 1
	p.HasNext = page < p.TotalPages
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}
