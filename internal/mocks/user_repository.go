package mocks

import (
	"context"
	"time"

	"user-directory-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ domain.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*domain.User)
	return created, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, userID int64, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, userID, user)
	updated, _ := args.Get(0).(*domain.User)
	return updated, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) ListByBirthDateBetween(ctx context.Context, from, to time.Time) ([]*domain.User, error) {
	args := m.Called(ctx, from, to)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}
