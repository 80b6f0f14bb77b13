package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("incorrect email or password")

// User models an account holder. PasswordHash never leaves the service
// layer; responses carry the public projection only.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"user_name"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_on"`
	UpdatedAt    time.Time `json:"last_update"`
}
