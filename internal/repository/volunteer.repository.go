package repository

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"gorm.io/gorm/clause"
)

type VolunteerRepository struct {
	*db.DB
}

func NewVolunteerRepository(db *db.DB) *VolunteerRepository {
	return &VolunteerRepository{db}
}

func (r *VolunteerRepository) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	entity := toVolunteerEntity(v)
	if err := r.Write(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, entity.ID)
}

// List returns every volunteer alphabetically by name.
func (r *VolunteerRepository) List(ctx context.Context) ([]*model.Volunteer, error) {
	var entities []*VolunteerEntity
	err := r.Read(ctx).
		Preload("RegisteredByUser", userSummaryColumns).
		Order("name ASC").Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toVolunteerModels(entities), nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*model.Volunteer, error) {
	var entity VolunteerEntity
	if err := r.Read(ctx).Preload("RegisteredByUser", userSummaryColumns).First(&entity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toVolunteerModel(&entity), nil
}

func (r *VolunteerRepository) Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	entity := toVolunteerEntity(v)
	result := r.Write(ctx).Model(entity).
		Select("*").
		Omit("id", "created_at", "registered_by", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&VolunteerEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
