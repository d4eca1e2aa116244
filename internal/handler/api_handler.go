package handler

import (
	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*UserHandler
}

func NewAPIHandler(
	userUseCase domain.UserUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		UserHandler: NewUserHandler(userUseCase, logger),
	}
}
