package repository

import (
	"context"
	"sync"
	"time"

	"user-directory-service/internal/domain"
)

// MemoryUserRepository хранит пользователей в памяти процесса.
// Изменения выполняются под эксклюзивной блокировкой, чтения разделяют
// блокировку между собой и не видят частично применённых изменений.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int64
}

// NewMemoryUserRepository создает пустое хранилище; первый ID равен 1.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make([]*domain.User, 0),
		nextID: 1,
	}
}

var _ domain.UserRepository = (*MemoryUserRepository)(nil)

// List возвращает копии всех пользователей в порядке добавления.
func (r *MemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, len(r.users))
	for i, user := range r.users {
		result[i] = user.Clone()
	}
	return result, nil
}

// Create присваивает пользователю следующий ID и добавляет его в конец списка.
// Счётчик не уменьшается, поэтому ID удалённых пользователей не переиспользуются.
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := user.Clone()
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, stored)

	return stored.Clone(), nil
}

// Update перезаписывает все поля найденного пользователя, кроме ID.
func (r *MemoryUserRepository) Update(ctx context.Context, userID int64, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}

	r.users[i].Apply(user)
	return r.users[i].Clone(), nil
}

// Delete удаляет пользователя, сохраняя порядок остальных.
func (r *MemoryUserRepository) Delete(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return domain.ErrUserNotFound
	}

	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// ListByBirthDateBetween возвращает пользователей с датой рождения строго между from и to.
func (r *MemoryUserRepository) ListByBirthDateBetween(ctx context.Context, from, to time.Time) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0)
	for _, user := range r.users {
		if user.BornBetween(from, to) {
			result = append(result, user.Clone())
		}
	}
	return result, nil
}

// indexOf ищет пользователя линейным проходом. O(n), но без индекса
// порядок вставки для List не нужно синхронизировать.
func (r *MemoryUserRepository) indexOf(userID int64) int {
	for i, user := range r.users {
		if user.ID == userID {
			return i
		}
	}
	return -1
}
