package user

const (
	SelectUserByID = `
		SELECT id, email, password_hash, name, avatar_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, email, password_hash, name, avatar_url, created_at, updated_at
		FROM users
		WHERE email = lower($1)
	`
	InsertUser = `
		INSERT INTO users (id, email, password_hash, name)
		VALUES ($1, lower($2), $3, $4)
		RETURNING
		  id, email, password_hash, name, avatar_url, created_at, updated_at
	`
	UpdateUserProfile = `
		UPDATE users
		SET name = $1,
		    avatar_url = $2,
		    updated_at = now()
		WHERE id = $3
		RETURNING
		  id, email, password_hash, name, avatar_url, created_at, updated_at
	`
)
