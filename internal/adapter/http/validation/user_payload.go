package validation

import (
	"encoding/base64"

	"productivity/internal/adapter/http/dto"
	"productivity/internal/core/domain"
)

func BuildUpdateUserInput(req dto.UpdateUserRequest) (domain.UpdateUserInput, error) {
	in := domain.UpdateUserInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		RoleID:   req.RoleID,
	}

	if req.Image != "" {
		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return domain.UpdateUserInput{}, err
		}
		in.Image = image
	}

	return in, nil
}
