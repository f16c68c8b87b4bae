package http

import (
	"net/http"

	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

type UserHandler struct {
	userUsecase usecase.UserUC
	logger      logger.Logger
}

func NewUserHandler(userUsecase usecase.UserUC, logger logger.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

// listUsers
//
//	@Summary	Список пользователей
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		UserResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/users [get]
func (u *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := u.userUsecase.ListUsers(r.Context())
	if err != nil {
		writeErrorLogged(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrUserResponse(users))
}

// createUser
//
//	@Summary	Регистрация пользователя
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		CreateUserRequest	true	"Пользователь"
//	@Success	201		{object}	UserResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	409		{object}	ErrorResponse	"Email уже занят"
//	@Router		/users [post]
func (u *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorLogged(w, r, u.logger, err)
		return
	}

	user, err := u.userUsecase.CreateUser(r.Context(), req.toUC())
	if err != nil {
		writeErrorLogged(w, r, u.logger, err)
		return
	}

	u.logger.Infof("user created: id=%d", user.ID)
	WriteSuccess(w, http.StatusCreated, toUserResponse(user))
}
