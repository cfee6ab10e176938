package users

import (
	"time"

	"github.com/salescraft/outreach-backend/internal/entity"
)

func toUserDTO(u *entity.User) entity.UserDTO {
	dto := entity.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
	}
	if !u.CreatedAt.IsZero() {
		dto.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !u.LastLoginAt.IsZero() {
		dto.LastLoginAt = u.LastLoginAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func toUserDTOs(users []entity.User) []entity.UserDTO {
	out := make([]entity.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out
}
