package stores

import (
	"context"

	"coursereview/backend/apperrors"
	"coursereview/backend/models"

	"gorm.io/gorm"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByUsername returns the user or an ErrResourceNotFound error.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// Create persists u. A taken username or email yields ErrUsernameTaken
	// or ErrEmailTaken, both of which wrap ErrConflict.
	Create(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err, "User not found")
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "User not found")
	}
	return &u, nil
}

func (s *GormUserStore) Create(ctx context.Context, u *models.User) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if taken, err := exists(tx, &models.User{}, "username = ?", u.Username); err != nil {
			return err
		} else if taken {
			return apperrors.ErrUsernameTaken
		}
		if taken, err := exists(tx, &models.User{}, "email = ?", u.Email); err != nil {
			return err
		} else if taken {
			return apperrors.ErrEmailTaken
		}
		return tx.Create(u).Error
	})

	// A concurrent insert can still win between the check and the write.
	switch {
	case isDuplicateKey(err, "email"):
		return apperrors.ErrEmailTaken
	case isDuplicateKey(err, ""):
		return apperrors.ErrUsernameTaken
	}
	return err
}

func (s *GormUserStore) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewResourceNotFoundError("User not found")
	}
	return nil
}

func (s *GormUserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
