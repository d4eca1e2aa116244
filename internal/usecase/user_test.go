package usecase_test

import (
	"context"
	"testing"
	"time"

	"user-directory-service/internal/domain"
	"user-directory-service/internal/mocks"
	"user-directory-service/internal/repository"
	"user-directory-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) usecase.Clock {
	return func() time.Time { return t }
}

// Сегодня 2024-06-15, граница для 18 лет: 2006-06-15
var today = time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)

func newMemoryUseCase() domain.UserUseCase {
	return usecase.NewUserUseCase(repository.NewMemoryUserRepository(), 18, usecase.WithClock(fixedClock(today)))
}

func adult(email string, birth time.Time) *domain.User {
	return &domain.User{
		Email:     email,
		FirstName: "John",
		LastName:  "Doe",
		BirthDate: birth,
	}
}

func TestUserUseCase_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, 18, usecase.WithClock(fixedClock(today)))

	candidate := adult("john@example.com", date(1990, time.January, 1))
	stored := adult("john@example.com", date(1990, time.January, 1))
	stored.ID = 1

	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 0 && u.Email == "john@example.com"
	})).Return(stored, nil)

	result, err := uc.CreateUser(ctx, candidate)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_CreateUser_Underage(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, 18, usecase.WithClock(fixedClock(today)))

	result, err := uc.CreateUser(ctx, adult("kid@example.com", date(2006, time.June, 16)))

	assert.ErrorIs(t, err, domain.ErrAgeIneligible)
	assert.Nil(t, result)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUseCase_CreateUser_UnderageLeavesDirectoryUnchanged(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	_, err := uc.CreateUser(ctx, adult("a@example.com", date(1990, time.January, 1)))
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, adult("kid@example.com", date(2010, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrAgeIneligible)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserUseCase_CreateUser_BirthDateOnCutoffIsEligible(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	user, err := uc.CreateUser(ctx, adult("edge@example.com", date(2006, time.June, 15)))

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserUseCase_CreateUser_LeapDayCutoff(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(repository.NewMemoryUserRepository(), 18,
		usecase.WithClock(fixedClock(date(2024, time.February, 29))))

	// Граница 2006-02-28, а не 2006-03-01
	_, err := uc.CreateUser(ctx, adult("mar@example.com", date(2006, time.March, 1)))
	assert.ErrorIs(t, err, domain.ErrAgeIneligible)

	_, err = uc.CreateUser(ctx, adult("feb@example.com", date(2006, time.February, 28)))
	assert.NoError(t, err)
}

func TestUserUseCase_CreateUser_CustomMinAge(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(repository.NewMemoryUserRepository(), 21, usecase.WithClock(fixedClock(today)))

	_, err := uc.CreateUser(ctx, adult("twenty@example.com", date(2004, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrAgeIneligible)
	assert.Equal(t, 21, uc.MinAge())
}

func TestUserUseCase_CreateUser_IgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	candidate := adult("a@example.com", date(1990, time.January, 1))
	candidate.ID = 42

	user, err := uc.CreateUser(ctx, candidate)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int64(42), candidate.ID)
}

func TestUserUseCase_CreateUser_IDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	var last int64
	for i := 0; i < 5; i++ {
		user, err := uc.CreateUser(ctx, adult("u@example.com", date(1980+i, time.March, 3)))
		require.NoError(t, err)
		assert.Greater(t, user.ID, last)
		last = user.ID
	}

	// Удаление не освобождает ID
	require.NoError(t, uc.DeleteUser(ctx, last))
	user, err := uc.CreateUser(ctx, adult("next@example.com", date(1970, time.March, 3)))
	require.NoError(t, err)
	assert.Greater(t, user.ID, last)
}

func TestUserUseCase_CreateUser_Nil(t *testing.T) {
	uc := newMemoryUseCase()

	_, err := uc.CreateUser(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidUser)
}

func TestUserUseCase_UpdateUser_ReplacesFieldsKeepsID(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	created, err := uc.CreateUser(ctx, adult("old@example.com", date(1990, time.January, 1)))
	require.NoError(t, err)

	replacement := &domain.User{
		ID:          99,
		Email:       "new@example.com",
		FirstName:   "Jane",
		LastName:    "Roe",
		BirthDate:   date(1985, time.July, 4),
		Address:     "1 Elm St",
		PhoneNumber: "+100200300",
	}

	updated, err := uc.UpdateUser(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, &domain.User{
		ID:          created.ID,
		Email:       "new@example.com",
		FirstName:   "Jane",
		LastName:    "Roe",
		BirthDate:   date(1985, time.July, 4),
		Address:     "1 Elm St",
		PhoneNumber: "+100200300",
	}, users[0])
}

func TestUserUseCase_UpdateUser_DoesNotRecheckAge(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	created, err := uc.CreateUser(ctx, adult("a@example.com", date(1990, time.January, 1)))
	require.NoError(t, err)

	updated, err := uc.UpdateUser(ctx, created.ID, adult("a@example.com", date(2015, time.January, 1)))

	assert.NoError(t, err)
	assert.Equal(t, date(2015, time.January, 1), updated.BirthDate)
}

func TestUserUseCase_UpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, 18)

	replacement := adult("a@example.com", date(1990, time.January, 1))
	userRepo.On("Update", ctx, int64(7), replacement).Return(nil, domain.ErrUserNotFound)

	result, err := uc.UpdateUser(ctx, 7, replacement)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, result)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_DeleteThenMutate_NotFound(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	created, err := uc.CreateUser(ctx, adult("a@example.com", date(1990, time.January, 1)))
	require.NoError(t, err)
	require.NoError(t, uc.DeleteUser(ctx, created.ID))

	_, err = uc.UpdateUser(ctx, created.ID, adult("b@example.com", date(1991, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = uc.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUseCase_SearchByBirthDateRange_InvalidRange(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, 18)

	result, err := uc.SearchByBirthDateRange(ctx, date(2000, time.January, 1), date(1990, time.January, 1))

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	userRepo.AssertNotCalled(t, "ListByBirthDateBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_SearchByBirthDateRange_SameDayIsValid(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, 18)

	day := date(1990, time.June, 15)
	userRepo.On("ListByBirthDateBetween", ctx, day, day).Return([]*domain.User{}, nil)

	result, err := uc.SearchByBirthDateRange(ctx, day, day)

	assert.NoError(t, err)
	assert.Empty(t, result)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_SearchByBirthDateRange_BoundsAreExclusive(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()

	for _, birth := range []time.Time{
		date(1980, time.May, 5),
		date(1990, time.June, 15),
		date(2000, time.January, 1),
	} {
		_, err := uc.CreateUser(ctx, adult("u@example.com", birth))
		require.NoError(t, err)
	}

	found, err := uc.SearchByBirthDateRange(ctx, date(1989, time.January, 1), date(1991, time.January, 1))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, date(1990, time.June, 15), found[0].BirthDate)

	found, err = uc.SearchByBirthDateRange(ctx, date(1990, time.June, 15), date(2000, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = uc.SearchByBirthDateRange(ctx, date(1970, time.January, 1), date(2001, time.January, 1))
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{found[0].ID, found[1].ID, found[2].ID})
}
