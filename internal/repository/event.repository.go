package repository

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"gorm.io/gorm/clause"
)

type EventRepository struct {
	*db.DB
}

func NewEventRepository(db *db.DB) *EventRepository {
	return &EventRepository{db}
}

func (r *EventRepository) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	entity := toEventEntity(ev)
	if err := r.Write(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, entity.ID)
}

// List returns every event by event date, latest first, with the organizer embedded.
func (r *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	var entities []*EventEntity
	err := r.Read(ctx).
		Preload("OrganizerUser", userSummaryColumns).
		Order("event_date DESC").Order("id DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toEventModels(entities), nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var entity EventEntity
	if err := r.Read(ctx).Preload("OrganizerUser", userSummaryColumns).First(&entity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toEventModel(&entity), nil
}

func (r *EventRepository) Update(ctx context.Context, ev *model.Event) (*model.Event, error) {
	entity := toEventEntity(ev)
	result := r.Write(ctx).Model(entity).
		Select("*").
		Omit("id", "created_at", "organizer", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, ev.ID)
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&EventEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
