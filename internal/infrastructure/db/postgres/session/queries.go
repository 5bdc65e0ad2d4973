package session

const (
	InsertSession = `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	SelectLiveSession = `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1 AND expires_at > now()
	`
	DeleteSessionByToken = `
		DELETE FROM sessions
		WHERE token = $1
	`
	DeleteExpiredSessions = `
		DELETE FROM sessions
		WHERE expires_at <= now()
	`
)
