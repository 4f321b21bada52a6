package repository

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
)

type ContactRepository struct {
	*db.DB
}

func NewContactRepository(db *db.DB) *ContactRepository {
	return &ContactRepository{db}
}

func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	entity := toContactEntity(c)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toContactModel(entity), nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	var entities []*ContactEntity
	if err := r.Read(ctx).Order("created_at DESC").Order("id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Contact, len(entities))
	for i, e := range entities {
		out[i] = toContactModel(e)
	}
	return out, nil
}
