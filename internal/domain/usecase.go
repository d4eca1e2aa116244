package domain

import (
	"context"
	"time"
)

// UserUseCase определяет бизнес-логику справочника пользователей.
type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateUser(ctx context.Context, userID int64, user *User) (*User, error)
	DeleteUser(ctx context.Context, userID int64) error
	SearchByBirthDateRange(ctx context.Context, from, to time.Time) ([]*User, error)
	MinAge() int
}
