package services

import (
	"context"
	"errors"

	"github.com/nimasrn/ngo-backend/internal/auth"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type TokenIssuer interface {
	Generate(user *model.User) (string, error)
}

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, translate(err, ErrUserNotFound, "lookup user")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleStaff,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, translate(err, ErrUserNotFound, "create user")
	}
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	u, err := s.users.GetByEmail(ctx, model.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, translate(err, ErrUserNotFound, "lookup user")
	}
	if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.issue(u)
}

// Me returns the stored user behind identity.
func (s *AuthService) Me(ctx context.Context, identity *model.Identity) (*model.User, error) {
	u, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, translate(err, ErrUserNotFound, "get user")
	}
	return u, nil
}

func (s *AuthService) issue(u *model.User) (*model.AuthResponse, error) {
	token, err := s.tokens.Generate(u)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: u}, nil
}
