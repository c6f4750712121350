package stores

import (
	"context"

	"coursereview/backend/apperrors"
	"coursereview/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewStore abstracts review persistence and rating aggregates.
type ReviewStore interface {
	// Create persists r once its course and author are known to exist.
	Create(ctx context.Context, r *models.Review) error
	// ListByCourse returns the course's reviews newest first, authors loaded.
	ListByCourse(ctx context.Context, courseID uint) ([]models.Review, error)
	// AverageRatings returns the mean rating per course id. Courses without
	// reviews are absent from the map.
	AverageRatings(ctx context.Context, courseIDs []uint) (map[uint]float64, error)
	Count(ctx context.Context) (int64, error)
}

type GormReviewStore struct{ DB *gorm.DB }

func (s *GormReviewStore) Create(ctx context.Context, r *models.Review) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists(tx, &models.Course{}, "id = ?", r.CourseID); err != nil {
			return err
		} else if !ok {
			return apperrors.NewResourceNotFoundError("Course not found")
		}
		if ok, err := exists(tx, &models.User{}, "id = ?", r.UserID); err != nil {
			return err
		} else if !ok {
			return apperrors.NewResourceNotFoundError("User not found")
		}
		return tx.Omit(clause.Associations).Create(r).Error
	})
}

func (s *GormReviewStore) ListByCourse(ctx context.Context, courseID uint) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.DB.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "created_at")
		}).
		Where("course_id = ?", courseID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "timestamp"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		}}).
		Find(&reviews).Error
	return reviews, err
}

func (s *GormReviewStore) AverageRatings(ctx context.Context, courseIDs []uint) (map[uint]float64, error) {
	out := make(map[uint]float64, len(courseIDs))
	if len(courseIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		CourseID  uint
		AvgRating float64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.Review{}).
		Select("course_id, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.CourseID] = r.AvgRating
	}
	return out, nil
}

func (s *GormReviewStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Review{}).Count(&n).Error
	return n, err
}
