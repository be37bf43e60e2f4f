package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockRoleRepo struct {
	domain.RoleRepository
	CreateFunc     func(ctx context.Context, role *domain.Role) error
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Role, error)
	GetAllFunc     func(ctx context.Context) ([]domain.Role, error)
	GetDefaultFunc func(ctx context.Context) (*domain.Role, error)
	UpdateFunc     func(ctx context.Context, role *domain.Role) error
	DeleteFunc     func(ctx context.Context, id int) error
}

func (m *MockRoleRepo) Create(ctx context.Context, role *domain.Role) error {
	return m.CreateFunc(ctx, role)
}

func (m *MockRoleRepo) GetById(ctx context.Context, id int) (*domain.Role, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockRoleRepo) GetAll(ctx context.Context) ([]domain.Role, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockRoleRepo) GetDefault(ctx context.Context) (*domain.Role, error) {
	return m.GetDefaultFunc(ctx)
}

func (m *MockRoleRepo) Update(ctx context.Context, role *domain.Role) error {
	return m.UpdateFunc(ctx, role)
}

func (m *MockRoleRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
