package handler

import (
	"errors"
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	id := user.ID
	return api.User{
		Id:          &id,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		BirthDate:   openapi_types.Date{Time: user.BirthDate},
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

// toDomainUser игнорирует id из тела запроса: его назначает справочник.
func toDomainUser(user api.User) *domain.User {
	return &domain.User{
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		BirthDate:   domain.DateOf(user.BirthDate.Time),
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
	}
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) domain.ErrorResponse {
	return domain.ErrorResponse{Error: httpErr}
}

func validationErrorResponse(message string) domain.ErrorResponse {
	return toErrorResponse(domain.CodeInvalidRequest, "Validation error: "+message)
}

func internalErrorResponse() domain.ErrorResponse {
	return toErrorResponse(domain.CodeInternalError, "Internal server error")
}

func getHTTPStatusCode(err error) int {
	switch {
	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrAgeIneligible),
		errors.Is(err, domain.ErrInvalidUser):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
