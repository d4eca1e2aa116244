package domain

import (
	"context"
	"time"
)

// User представляет запись пользователя в справочнике.
// ID равен нулю, пока запись не сохранена справочником.
type User struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Address     string
	PhoneNumber string
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
// Порядок выдачи совпадает с порядком вставки.
type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, userID int64, user *User) (*User, error)
	Delete(ctx context.Context, userID int64) error
	ListByBirthDateBetween(ctx context.Context, from, to time.Time) ([]*User, error)
}

// DateOf отбрасывает время суток, оставляя календарную дату в UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Apply переносит все поля replacement, кроме ID.
func (u *User) Apply(replacement *User) {
	u.Email = replacement.Email
	u.FirstName = replacement.FirstName
	u.LastName = replacement.LastName
	u.BirthDate = DateOf(replacement.BirthDate)
	u.Address = replacement.Address
	u.PhoneNumber = replacement.PhoneNumber
}

// BornBetween сообщает, лежит ли дата рождения строго между from и to.
func (u *User) BornBetween(from, to time.Time) bool {
	return u.BirthDate.After(from) && u.BirthDate.Before(to)
}

// Clone возвращает независимую копию записи.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// YearsBefore сдвигает дату на years лет назад. 29 февраля в невисокосном
// году превращается в 28 февраля, а не в 1 марта, как у time.AddDate.
func YearsBefore(date time.Time, years int) time.Time {
	y, m, d := date.Date()
	shifted := time.Date(y-years, m, 1, 0, 0, 0, 0, time.UTC)
	if last := shifted.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(y-years, m, d, 0, 0, 0, 0, time.UTC)
}
