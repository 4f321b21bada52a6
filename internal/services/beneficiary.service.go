package services

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type BeneficiaryRepository interface {
	Create(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error)
	List(ctx context.Context) ([]*model.Beneficiary, error)
	GetByID(ctx context.Context, id int64) (*model.Beneficiary, error)
	Update(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error)
	Delete(ctx context.Context, id int64) error
}

type BeneficiaryService struct {
	repo BeneficiaryRepository
}

func NewBeneficiaryService(repo BeneficiaryRepository) *BeneficiaryService {
	return &BeneficiaryService{repo: repo}
}

func (s *BeneficiaryService) List(ctx context.Context) ([]*model.Beneficiary, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrBeneficiaryNotFound, "list beneficiaries")
	}
	return out, nil
}

func (s *BeneficiaryService) Get(ctx context.Context, id int64) (*model.Beneficiary, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrBeneficiaryNotFound, "get beneficiary")
	}
	return b, nil
}

func (s *BeneficiaryService) Create(ctx context.Context, identity *model.Identity, req model.BeneficiaryRequest) (*model.Beneficiary, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	b := &model.Beneficiary{CreatedBy: ownerID(identity)}
	req.Apply(b)

	out, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, translate(err, ErrBeneficiaryNotFound, "create beneficiary")
	}
	return out, nil
}

func (s *BeneficiaryService) Update(ctx context.Context, id int64, req model.BeneficiaryRequest) (*model.Beneficiary, error) {
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
		return nil, translate(err, ErrBeneficiaryNotFound, "update beneficiary")
	}
	return out, nil
}

func (s *BeneficiaryService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), ErrBeneficiaryNotFound, "delete beneficiary")
}
