package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EventEntity struct {
	ID                 int64                `gorm:"primaryKey;autoIncrement;column:id"`
	Title              string               `gorm:"column:title;not null"`
	Description        string               `gorm:"column:description;not null;default:''"`
	Date               time.Time            `gorm:"column:event_date;not null;index"`
	Location           string               `gorm:"column:location;not null;default:''"`
	VolunteersRequired *int                 `gorm:"column:volunteers_required"`
	Budget             *decimal.NullDecimal `gorm:"column:budget;type:decimal(10,2)"`
	Status             string               `gorm:"column:status;not null;default:planned"`
	Organizer          *int64               `gorm:"column:organizer"`
	OrganizerUser      *UserEntity          `gorm:"foreignKey:Organizer;references:ID"`
	CreatedAt          time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (EventEntity) TableName() string {
	return "events"
}

func (e *EventEntity) BeforeSave(*gorm.DB) error {
	return checkEnum("status", e.Status, model.EventStatus(e.Status).Valid())
}

func toEventEntity(m *model.Event) *EventEntity {
	if m == nil {
		return nil
	}
	e := &EventEntity{
		ID:                 m.ID,
		Title:              m.Title,
		Description:        m.Description,
		Date:               m.Date,
		Location:           m.Location,
		VolunteersRequired: m.VolunteersRequired,
		Status:             string(m.Status),
		Organizer:          m.Organizer,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Budget != nil {
		e.Budget = &decimal.NullDecimal{Decimal: *m.Budget, Valid: true}
	}
	return e
}

func toEventModel(e *EventEntity) *model.Event {
	if e == nil {
		return nil
	}
	m := &model.Event{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Date:               utc(e.Date),
		Location:           e.Location,
		VolunteersRequired: e.VolunteersRequired,
		Status:             model.EventStatus(e.Status),
		Organizer:          e.Organizer,
		OrganizerDetails:   toUserSummary(e.OrganizerUser),
		CreatedAt:          utc(e.CreatedAt),
		UpdatedAt:          utc(e.UpdatedAt),
	}
	if e.Budget != nil && e.Budget.Valid {
		b := e.Budget.Decimal
		m.Budget = &b
	}
	return m
}

func toEventModels(entities []*EventEntity) []*model.Event {
	models := make([]*model.Event, len(entities))
	for i, e := range entities {
		models[i] = toEventModel(e)
	}
	return models
}
