package mapper

import (
	"encoding/base64"

	"productivity/internal/adapter/http/dto"
	"productivity/internal/core/domain"
)

func ToUserProfile(user domain.User) dto.UserProfile {
	profile := dto.UserProfile{
		ID:     user.ID,
		Name:   user.Name,
		Login:  user.Login,
		RoleID: user.RoleID,
		Image:  base64.StdEncoding.EncodeToString(user.Image),
	}

	if user.Role != nil {
		profile.Role = user.Role.Name
	}

	return profile
}

func ToRoleItems(roles []domain.Role) []dto.RoleItem {
	items := make([]dto.RoleItem, 0, len(roles))
	for _, role := range roles {
		items = append(items, dto.RoleItem{ID: role.ID, Name: role.Name})
	}
	return items
}
