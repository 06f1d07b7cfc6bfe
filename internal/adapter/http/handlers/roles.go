package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"productivity/internal/adapter/http/mapper"
	"productivity/internal/adapter/http/middleware"
	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
	"productivity/pkg/apierrors"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	lang := middleware.GetLang(c)

	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRolesNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgRolesNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list roles", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRoles, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRoleItems(roles))
}
