package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrAgeIneligible    = errors.New("user is younger than the minimum age")
	ErrInvalidDateRange = errors.New("from date is after to date")
	ErrInvalidUser      = errors.New("invalid user")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

const (
	CodeAgeIneligible  = "AGE_INELIGIBLE"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrAgeIneligible: {Code: CodeAgeIneligible, Message: "user is too young"},
	ErrInvalidUser:   {Code: CodeInvalidRequest, Message: "Validation error: invalid user"},
	ErrUserNotFound:  {Code: CodeNotFound, Message: "user not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
// Обёрнутые ошибки сопоставляются через errors.Is.
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
