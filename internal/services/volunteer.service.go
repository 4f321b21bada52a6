package services

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type VolunteerRepository interface {
	Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error)
	List(ctx context.Context) ([]*model.Volunteer, error)
	GetByID(ctx context.Context, id int64) (*model.Volunteer, error)
	Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error)
	Delete(ctx context.Context, id int64) error
}

type VolunteerService struct {
	repo VolunteerRepository
}

func NewVolunteerService(repo VolunteerRepository) *VolunteerService {
	return &VolunteerService{repo: repo}
}

func (s *VolunteerService) List(ctx context.Context) ([]*model.Volunteer, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrVolunteerNotFound, "list volunteers")
	}
	return out, nil
}

func (s *VolunteerService) Get(ctx context.Context, id int64) (*model.Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrVolunteerNotFound, "get volunteer")
	}
	return v, nil
}

func (s *VolunteerService) Create(ctx context.Context, identity *model.Identity, req model.VolunteerRequest) (*model.Volunteer, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	v := &model.Volunteer{RegisteredBy: ownerID(identity)}
	req.Apply(v)

	out, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, translate(err, ErrVolunteerNotFound, "create volunteer")
	}
	return out, nil
}

func (s *VolunteerService) Update(ctx context.Context, id int64, req model.VolunteerRequest) (*model.Volunteer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	req.Apply(existing)

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, translate(err, ErrVolunteerNotFound, "update volunteer")
	}
	return out, nil
}

func (s *VolunteerService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), ErrVolunteerNotFound, "delete volunteer")
}
