package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFilmRepo struct {
	mock.Mock
	domain.FilmRepository
}

func (m *MockFilmRepo) Create(ctx context.Context, film *domain.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepo) GetById(ctx context.Context, id int) (*domain.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmRepo) GetAll(ctx context.Context, filters domain.FilmFilters) ([]domain.Film, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Film), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockFilmRepo) Update(ctx context.Context, film *domain.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepo) SetAvailability(ctx context.Context, id int, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockFilmRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
