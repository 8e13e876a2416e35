package models

import "time"

// User is a row of the users table.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

var UserColumns = []string{"id", "username", "email", "password_hash", "created_at"}
