package handler

import (
	"errors"
	"fmt"
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/sirupsen/logrus"
)

// Подтверждения успешных операций
const (
	msgUserCreated = "User created successfully."
	msgUserUpdated = "User updated successfully."
	msgUserDeleted = "User deleted successfully."
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// GetUsers возвращает всех пользователей.
func (h *UserHandler) GetUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list users")
		return h.respondError(c, err)
	}

	logEntry.WithField("users_count", len(users)).Info("Users listed")
	return c.JSON(http.StatusOK, toAPIUsers(users))
}

// PostUsers создает пользователя, если он достиг минимального возраста.
func (h *UserHandler) PostUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "create_user")

	var req api.User
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind create request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(bindErrorMessage(err)))
	}
	if err := c.Validate(&req); err != nil {
		logEntry.WithError(err).Warn("Create request failed validation")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"email":      req.Email,
		"birth_date": req.BirthDate.Format(openapi_types.DateFormat),
	})

	user, err := h.userUseCase.CreateUser(c.Request().Context(), toDomainUser(req))
	if err != nil {
		if errors.Is(err, domain.ErrAgeIneligible) {
			logEntry.WithError(err).Warn("User is below minimum age")
			return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeAgeIneligible,
				fmt.Sprintf("user must be at least %d years old", h.userUseCase.MinAge())))
		}
		logEntry.WithError(err).Error("Failed to create user")
		return h.respondError(c, err)
	}

	logEntry.WithField("user_id", user.ID).Info("User created")
	return c.String(http.StatusCreated, msgUserCreated)
}

// PutUsersUserId заменяет все поля пользователя, кроме ID.
// Тело запроса не валидируется по полям, возраст не перепроверяется.
func (h *UserHandler) PutUsersUserId(c echo.Context, userId int64) error {
	logEntry := h.logRequest(c, "update_user").WithField("user_id", userId)

	if !hasBody(c.Request()) {
		logEntry.Warn("Update request has no body")
		return c.JSON(http.StatusBadRequest, validationErrorResponse("request body is required"))
	}

	var req api.User
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind update request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(bindErrorMessage(err)))
	}

	if _, err := h.userUseCase.UpdateUser(c.Request().Context(), userId, toDomainUser(req)); err != nil {
		logEntry.WithError(err).Warn("Failed to update user")
		return h.respondError(c, err)
	}

	logEntry.Info("User updated")
	return c.String(http.StatusOK, msgUserUpdated)
}

// DeleteUsersUserId удаляет пользователя.
func (h *UserHandler) DeleteUsersUserId(c echo.Context, userId int64) error {
	logEntry := h.logRequest(c, "delete_user").WithField("user_id", userId)

	if err := h.userUseCase.DeleteUser(c.Request().Context(), userId); err != nil {
		logEntry.WithError(err).Warn("Failed to delete user")
		return h.respondError(c, err)
	}

	logEntry.Info("User deleted")
	return c.String(http.StatusOK, msgUserDeleted)
}

// GetUsersSearch ищет пользователей, родившихся строго между from и to.
// При from > to отвечает 400 с пустым массивом.
func (h *UserHandler) GetUsersSearch(c echo.Context, params api.GetUsersSearchParams) error {
	logEntry := h.logRequest(c, "search_users").WithFields(logrus.Fields{
		"from": params.From.Format(openapi_types.DateFormat),
		"to":   params.To.Format(openapi_types.DateFormat),
	})

	users, err := h.userUseCase.SearchByBirthDateRange(c.Request().Context(), params.From.Time, params.To.Time)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			logEntry.WithError(err).Warn("Invalid birth date range")
			return c.JSON(http.StatusBadRequest, []api.User{})
		}
		logEntry.WithError(err).Error("Failed to search users")
		return h.respondError(c, err)
	}

	logEntry.WithField("users_count", len(users)).Info("Users found")
	return c.JSON(http.StatusOK, toAPIUsers(users))
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return fmt.Sprintf("%v: %v", he.Message, he.Internal)
		}
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

// hasBody сообщает, пришло ли тело запроса. Bind на пустом теле ошибки не возвращает.
func hasBody(req *http.Request) bool {
	return req.Body != nil && req.Body != http.NoBody && req.ContentLength != 0
}
