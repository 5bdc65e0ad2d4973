package auth

type Request struct {
	Action    string  `json:"action"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Name      string  `json:"name"`
	Token     string  `json:"token"`
	AvatarURL *string `json:"avatar_url"`
}
