package mocks

import (
	"context"

	"coursereview/backend/models"

	"github.com/stretchr/testify/mock"
)

type ReviewStore struct{ mock.Mock }

func (m *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReviewStore) ListByCourse(ctx context.Context, courseID uint) ([]models.Review, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *ReviewStore) AverageRatings(ctx context.Context, courseIDs []uint) (map[uint]float64, error) {
	args := m.Called(ctx, courseIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]float64), args.Error(1)
}

func (m *ReviewStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
