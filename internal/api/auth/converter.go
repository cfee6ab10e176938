package auth

import (
	"github.com/salescraft/outreach-backend/internal/entity"
)

func toUserDTO(u *entity.User) entity.UserDTO {
	return entity.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
	}
}
