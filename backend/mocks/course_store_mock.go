package mocks

import (
	"context"

	"coursereview/backend/models"

	"github.com/stretchr/testify/mock"
)

type CourseStore struct{ mock.Mock }

func (m *CourseStore) Create(ctx context.Context, c *models.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CourseStore) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseStore) Search(ctx context.Context, f models.CourseFilter, page, pageSize int) (*models.CoursePage, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoursePage), args.Error(1)
}

func (m *CourseStore) All(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *CourseStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
