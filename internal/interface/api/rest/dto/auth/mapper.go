package auth

import (
	"cloudvault-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID.String(),
		Email:     uDomain.Email,
		Name:      uDomain.Name,
		AvatarURL: uDomain.AvatarURL,
	}

	return u
}
