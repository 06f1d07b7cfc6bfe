package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"productivity/internal/adapter/http/dto"
	"productivity/internal/adapter/http/mapper"
	"productivity/internal/adapter/http/middleware"
	"productivity/internal/adapter/http/validation"
	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
	"productivity/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLoginTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgUserExists, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.String("login", req.Login), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegisterUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgUserRegistered, lang),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	token, err := h.userService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.String("login", req.Login), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLoginUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *UserHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)
	login := middleware.GetLogin(c)

	user, err := h.userService.Profile(c.Request.Context(), login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch user profile", zap.String("login", login), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserProfile(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)
	login := middleware.GetLogin(c)

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	in, err := validation.BuildUpdateUserInput(req)
	if err != nil {
		zap.L().Error("failed to decode user image", zap.String("login", login), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang),
		)
		return
	}

	newToken, err := h.userService.Update(c.Request.Context(), login, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrLoginTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgUserExists, lang),
			)
		default:
			zap.L().Error("failed to update user", zap.String("login", login), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message:  apierrors.GetTransErrorMsg(apierrors.MsgUserUpdated, lang),
		NewToken: newToken,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	login := middleware.GetLogin(c)

	if err := h.userService.Delete(c.Request.Context(), login); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.String("login", login), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgUserDeleted, lang),
	})
}
