// Package api описывает HTTP-контракт сервиса (см. openapi.yml): модели,
// интерфейс сервера и обёртку, которая разбирает параметры запроса.
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// User defines model for User.
type User struct {
	Id          *int64             `json:"id,omitempty"`
	Email       string             `json:"email" validate:"required"`
	FirstName   string             `json:"firstName" validate:"required"`
	LastName    string             `json:"lastName" validate:"required"`
	BirthDate   openapi_types.Date `json:"birthDate" validate:"required"`
	Address     string             `json:"address"`
	PhoneNumber string             `json:"phoneNumber"`
}

// GetUsersSearchParams defines parameters for GetUsersSearch.
type GetUsersSearchParams struct {
	From openapi_types.Date `form:"from" json:"from"`
	To   openapi_types.Date `form:"to" json:"to"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /users)
	GetUsers(ctx echo.Context) error
	// (POST /users)
	PostUsers(ctx echo.Context) error
	// (GET /users/search)
	GetUsersSearch(ctx echo.Context, params GetUsersSearchParams) error
	// (DELETE /users/{userId})
	DeleteUsersUserId(ctx echo.Context, userId int64) error
	// (PUT /users/{userId})
	PutUsersUserId(ctx echo.Context, userId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetUsers converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsers(ctx echo.Context) error {
	return w.Handler.GetUsers(ctx)
}

// PostUsers converts echo context to params.
func (w *ServerInterfaceWrapper) PostUsers(ctx echo.Context) error {
	return w.Handler.PostUsers(ctx)
}

// GetUsersSearch converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersSearch(ctx echo.Context) error {
	var err error
	var params GetUsersSearchParams

	if ctx.QueryParam("from") == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query argument from is required, but not found")
	}
	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	if ctx.QueryParam("to") == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query argument to is required, but not found")
	}
	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.GetUsersSearch(ctx, params)
}

// DeleteUsersUserId converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteUsersUserId(ctx echo.Context) error {
	userId, err := bindUserID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteUsersUserId(ctx, userId)
}

// PutUsersUserId converts echo context to params.
func (w *ServerInterfaceWrapper) PutUsersUserId(ctx echo.Context) error {
	userId, err := bindUserID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PutUsersUserId(ctx, userId)
}

func bindUserID(ctx echo.Context) (int64, error) {
	var userId int64
	err := runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}
	return userId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/users", wrapper.GetUsers)
	router.POST(baseURL+"/users", wrapper.PostUsers)
	router.GET(baseURL+"/users/search", wrapper.GetUsersSearch)
	router.DELETE(baseURL+"/users/:userId", wrapper.DeleteUsersUserId)
	router.PUT(baseURL+"/users/:userId", wrapper.PutUsersUserId)
}
