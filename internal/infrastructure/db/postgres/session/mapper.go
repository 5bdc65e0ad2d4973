package session

import (
	domain "cloudvault-api/internal/domain/session"
)

func fromDBModel(model *Session) *domain.Session {
	var s = &domain.Session{
		Token:  model.Token,
		UserID: model.UserID,

		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
	}

	return s
}
