package auth

type (
	// User is the public profile: the password hash never crosses this line.
	User struct {
		ID        string  `json:"id"`
		Email     string  `json:"email"`
		Name      string  `json:"name"`
		AvatarURL *string `json:"avatar_url"`
	}
	SessionResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	VerifyResponse struct {
		User User `json:"user"`
	}
	LogoutResponse struct {
		Success bool `json:"success"`
	}
)
