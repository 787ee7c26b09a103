package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password"`        // Hashed password, never serialized
}
