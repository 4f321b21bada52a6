package repository

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"gorm.io/gorm/clause"
)

type DonationRepository struct {
	*db.DB
}

func NewDonationRepository(db *db.DB) *DonationRepository {
	return &DonationRepository{db}
}

func (r *DonationRepository) Create(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	entity := toDonationEntity(d)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toDonationModel(entity), nil
}

// List returns every donation ordered by creation time, newest first.
func (r *DonationRepository) List(ctx context.Context) ([]*model.Donation, error) {
	var entities []*DonationEntity
	if err := r.Read(ctx).Order("created_at DESC").Order("id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toDonationModels(entities), nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id int64) (*model.Donation, error) {
	var entity DonationEntity
	if err := r.Read(ctx).First(&entity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toDonationModel(&entity), nil
}

// Update overwrites the editable columns. Status and recordedBy are kept.
func (r *DonationRepository) Update(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	entity := toDonationEntity(d)
	result := r.Write(ctx).Model(entity).
		Select("*").
		Omit("id", "created_at", "recorded_by", "status", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, d.ID)
}

// UpdateStatus moves a donation to status and returns the stored row.
func (r *DonationRepository) UpdateStatus(ctx context.Context, id int64, status model.DonationStatus) (*model.Donation, error) {
	var out *model.Donation
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var entity DonationEntity
		if err := r.Write(ctx).First(&entity, id).Error; err != nil {
			return notFound(err)
		}
		entity.Status = string(status)
		if err := r.Write(ctx).Save(&entity).Error; err != nil {
			return err
		}
		out = toDonationModel(&entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DonationRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&DonationEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
