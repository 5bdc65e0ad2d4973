package upload

type Request struct {
	Action   string `json:"action"`
	UserID   string `json:"user_id"`
	PublicID string `json:"public_id"`
}
