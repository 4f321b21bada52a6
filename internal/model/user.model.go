package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool { return oneOf(r, RoleAdmin, RoleStaff) }

const MinPasswordLength = 8

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the reduced user projection embedded in events and volunteers.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *RegisterRequest) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = NormalizeEmail(p.Email)
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p RegisterRequest) Validate() error {
	if blank(p.Name) {
		return errors.New("name is required")
	}
	if blank(p.Email) {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return errors.New("email is invalid")
	}
	if len(p.Password) < MinPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p LoginRequest) Validate() error {
	if blank(p.Email) || p.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
