package usecase

import (
	"context"
	"time"

	"user-directory-service/internal/domain"
)

// Clock возвращает текущий момент времени.
type Clock func() time.Time

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
	minAge   int
	now      Clock
}

// Option настраивает UserUseCase.
type Option func(*UserUseCase)

// WithClock подменяет источник текущей даты.
func WithClock(now Clock) Option {
	return func(uc *UserUseCase) {
		uc.now = now
	}
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, minAge int, opts ...Option) domain.UserUseCase {
	uc := &UserUseCase{
		userRepo: userRepo,
		minAge:   minAge,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// MinAge возвращает минимальный возраст для регистрации.
func (uc *UserUseCase) MinAge() int {
	return uc.minAge
}

// ListUsers возвращает всех пользователей в порядке добавления.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// CreateUser проверяет возраст и сохраняет пользователя, присваивая ему ID.
func (uc *UserUseCase) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidUser
	}

	// Дата рождения ровно на границе допустима
	if domain.DateOf(user.BirthDate).After(uc.eligibilityCutoff()) {
		return nil, domain.ErrAgeIneligible
	}

	candidate := user.Clone()
	candidate.ID = 0
	candidate.BirthDate = domain.DateOf(user.BirthDate)

	return uc.userRepo.Create(ctx, candidate)
}

// UpdateUser перезаписывает все поля пользователя, кроме ID.
// Возраст при обновлении не проверяется.
func (uc *UserUseCase) UpdateUser(ctx context.Context, userID int64, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidUser
	}

	return uc.userRepo.Update(ctx, userID, user)
}

// DeleteUser удаляет пользователя по ID.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID int64) error {
	return uc.userRepo.Delete(ctx, userID)
}

// SearchByBirthDateRange возвращает пользователей, родившихся строго между from и to.
func (uc *UserUseCase) SearchByBirthDateRange(ctx context.Context, from, to time.Time) ([]*domain.User, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	if from.After(to) {
		return []*domain.User{}, domain.ErrInvalidDateRange
	}

	return uc.userRepo.ListByBirthDateBetween(ctx, from, to)
}

func (uc *UserUseCase) eligibilityCutoff() time.Time {
	return domain.YearsBefore(uc.now(), uc.minAge)
}
