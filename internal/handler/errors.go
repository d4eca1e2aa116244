package handler

import (
	"errors"
	"fmt"
	"net/http"

	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler переводит необработанные ошибки (биндинг параметров, неизвестные
// маршруты, перехваченные паники) в единый формат ErrorResponse.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := internalErrorResponse()

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
			message := fmt.Sprint(he.Message)
			switch {
			case status == http.StatusNotFound:
				body = toErrorResponse(domain.CodeNotFound, message)
			case status == http.StatusBadRequest:
				body = validationErrorResponse(message)
			case status < http.StatusInternalServerError:
				body = toErrorResponse(domain.CodeInvalidRequest, message)
			}
		default:
			if httpErr, exists := domain.ToHTTPError(err); exists {
				status = getHTTPStatusCode(err)
				body = toAPIErrorResponse(httpErr)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Request().URL.Path).Error("Unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.WithError(err).Error("Failed to write error response")
		}
	}
}
