package models

import (
	"time"
)

// UserAccount is an entry of the persisted user directory.
// Passwords are kept in plain text; the storefront is a simulation.
type UserAccount struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SessionUser is the identity of the current session. It never carries the password.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar,omitempty"`
}

// Session derives the session identity from an account.
func (u UserAccount) Session() SessionUser {
	return SessionUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
	}
}
