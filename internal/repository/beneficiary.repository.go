package repository

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"gorm.io/gorm/clause"
)

type BeneficiaryRepository struct {
	*db.DB
}

func NewBeneficiaryRepository(db *db.DB) *BeneficiaryRepository {
	return &BeneficiaryRepository{db}
}

func (r *BeneficiaryRepository) Create(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error) {
	entity := toBeneficiaryEntity(b)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toBeneficiaryModel(entity), nil
}

// List returns every beneficiary, newest first.
func (r *BeneficiaryRepository) List(ctx context.Context) ([]*model.Beneficiary, error) {
	var entities []*BeneficiaryEntity
	if err := r.Read(ctx).Order("created_at DESC").Order("id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toBeneficiaryModels(entities), nil
}

func (r *BeneficiaryRepository) GetByID(ctx context.Context, id int64) (*model.Beneficiary, error) {
	var entity BeneficiaryEntity
	if err := r.Read(ctx).First(&entity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toBeneficiaryModel(&entity), nil
}

// Update overwrites every editable column of the row with b.ID.
func (r *BeneficiaryRepository) Update(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error) {
	entity := toBeneficiaryEntity(b)
	result := r.Write(ctx).Model(entity).
		Select("*").
		Omit("id", "created_at", "created_by", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BeneficiaryRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&BeneficiaryEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
