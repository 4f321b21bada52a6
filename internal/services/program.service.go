package services

import (
	"context"
	"strings"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type ProgramRepository interface {
	Create(ctx context.Context, p *model.Program) (*model.Program, error)
	List(ctx context.Context) ([]*model.Program, error)
	GetByID(ctx context.Context, id int64) (*model.Program, error)
	GetBySlug(ctx context.Context, slug string) (*model.Program, error)
	Update(ctx context.Context, p *model.Program) (*model.Program, error)
	Delete(ctx context.Context, id int64) error
}

type ProgramService struct {
	repo ProgramRepository
}

func NewProgramService(repo ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

// ListActive returns the public projection of active programs, newest first.
func (s *ProgramService) ListActive(ctx context.Context) ([]model.ProgramSummary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "list programs")
	}
	out := make([]model.ProgramSummary, 0, len(all))
	for _, p := range all {
		if p.Status == model.ProgramActive {
			out = append(out, p.Summary())
		}
	}
	return out, nil
}

// Featured returns at most FeaturedProgramsLimit active featured programs.
func (s *ProgramService) Featured(ctx context.Context) ([]*model.Program, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "list featured programs")
	}
	out := make([]*model.Program, 0, model.FeaturedProgramsLimit)
	for _, p := range all {
		if len(out) == model.FeaturedProgramsLimit {
			break
		}
		if p.Status == model.ProgramActive && p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll is the unfiltered admin view.
func (s *ProgramService) ListAll(ctx context.Context) ([]*model.Program, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "list programs")
	}
	return out, nil
}

func (s *ProgramService) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrProgramNotFound
	}
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "get program")
	}
	return p, nil
}

func (s *ProgramService) Create(ctx context.Context, identity *model.Identity, req model.ProgramRequest) (*model.Program, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	p := &model.Program{
		Slug:      model.Slugify(req.Title),
		CreatedBy: ownerID(identity),
	}
	req.Apply(p)

	out, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "create program")
	}
	return out, nil
}

func (s *ProgramService) Update(ctx context.Context, id int64, req model.ProgramRequest) (*model.Program, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "get program")
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	req.Apply(existing)

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, translate(err, ErrProgramNotFound, "update program")
	}
	return out, nil
}

func (s *ProgramService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), ErrProgramNotFound, "delete program")
}
