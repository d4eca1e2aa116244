package domain_test

import (
	"fmt"
	"testing"
	"time"

	"user-directory-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearsBefore(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		years int
		want  time.Time
	}{
		{"regular day", date(2024, time.June, 15), 18, date(2006, time.June, 15)},
		{"drops time of day", time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC), 18, date(2006, time.June, 15)},
		{"leap day to non-leap year", date(2024, time.February, 29), 18, date(2006, time.February, 28)},
		{"leap day to leap year", date(2024, time.February, 29), 4, date(2020, time.February, 29)},
		{"zero years", date(2024, time.January, 31), 0, date(2024, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.YearsBefore(tt.date, tt.years))
		})
	}
}

func TestUser_BornBetween(t *testing.T) {
	user := &domain.User{BirthDate: date(1990, time.June, 15)}

	assert.True(t, user.BornBetween(date(1990, time.June, 14), date(1990, time.June, 16)))
	assert.False(t, user.BornBetween(date(1990, time.June, 15), date(1991, time.January, 1)))
	assert.False(t, user.BornBetween(date(1989, time.January, 1), date(1990, time.June, 15)))
}

func TestUser_Apply(t *testing.T) {
	user := &domain.User{ID: 3, Email: "old@example.com", FirstName: "Old"}

	user.Apply(&domain.User{
		ID:          10,
		Email:       "new@example.com",
		FirstName:   "New",
		LastName:    "Name",
		BirthDate:   time.Date(1990, time.January, 1, 8, 30, 0, 0, time.UTC),
		Address:     "addr",
		PhoneNumber: "phone",
	})

	assert.Equal(t, &domain.User{
		ID:          3,
		Email:       "new@example.com",
		FirstName:   "New",
		LastName:    "Name",
		BirthDate:   date(1990, time.January, 1),
		Address:     "addr",
		PhoneNumber: "phone",
	}, user)
}

func TestToHTTPError(t *testing.T) {
	httpErr, ok := domain.ToHTTPError(domain.ErrUserNotFound)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeNotFound, httpErr.Code)

	httpErr, ok = domain.ToHTTPError(fmt.Errorf("update: %w", domain.ErrUserNotFound))
	assert.True(t, ok)
	assert.Equal(t, domain.CodeNotFound, httpErr.Code)

	_, ok = domain.ToHTTPError(assert.AnError)
	assert.False(t, ok)
}
