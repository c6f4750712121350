package seed

import (
	"context"
	"fmt"

	"coursereview/backend/config"
	"coursereview/backend/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminLockKey serializes bootstrap across processes sharing a database.
const adminLockKey = 7_340_201

// EnsureAdmin creates the configured administrator when no admin exists.
// Safe to run on every start and from several processes at once.
func EnsureAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	admin, err := DefaultAdmin(cfg)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminLockKey).Error; err != nil {
			return fmt.Errorf("failed to lock admin bootstrap: %w", err)
		}

		var admins int64
		if err := tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
			return err
		}
		if admins > 0 {
			logger.Debug().Int64("admins", admins).Msg("admin account present")
			return nil
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(admin)
		if res.Error != nil {
			return fmt.Errorf("failed to create admin: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			logger.Warn().Str("username", admin.Username).Msg("admin username or email already taken by a regular user; no admin created")
			return nil
		}

		logger.Info().Str("username", admin.Username).Msg("default admin account created")
		return nil
	})
}

// DefaultAdmin builds the bootstrap admin record from cfg.
func DefaultAdmin(cfg *config.Config) (*models.User, error) {
	admin := &models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		IsAdmin:  true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return admin, nil
}
