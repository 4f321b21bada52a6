package services

import (
	"context"
	"strings"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
}

type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit stores a public contact-form message.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	out, err := s.repo.Create(ctx, &model.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return nil, translate(err, ErrNotFound, "create contact")
	}
	return out, nil
}

func (s *ContactService) List(ctx context.Context) ([]*model.Contact, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrNotFound, "list contacts")
	}
	return out, nil
}
