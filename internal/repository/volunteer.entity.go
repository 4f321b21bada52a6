package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"gorm.io/gorm"
)

type VolunteerEntity struct {
	ID               int64       `gorm:"primaryKey;autoIncrement;column:id"`
	Name             string      `gorm:"column:name;not null;index"`
	Email            string      `gorm:"column:email;not null;default:''"`
	Phone            string      `gorm:"column:phone;not null"`
	Skills           StringArray `gorm:"column:skills;not null"`
	Availability     string      `gorm:"column:availability;not null;default:''"`
	Interests        StringArray `gorm:"column:interests;not null"`
	Status           string      `gorm:"column:status;not null;default:pending"`
	RegisteredBy     *int64      `gorm:"column:registered_by"`
	RegisteredByUser *UserEntity `gorm:"foreignKey:RegisteredBy;references:ID"`
	CreatedAt        time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (VolunteerEntity) TableName() string {
	return "volunteers"
}

func (e *VolunteerEntity) BeforeSave(*gorm.DB) error {
	return checkEnum("status", e.Status, model.VolunteerStatus(e.Status).Valid())
}

func toVolunteerEntity(m *model.Volunteer) *VolunteerEntity {
	if m == nil {
		return nil
	}
	return &VolunteerEntity{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Skills:       StringArray(m.Skills),
		Availability: m.Availability,
		Interests:    StringArray(m.Interests),
		Status:       string(m.Status),
		RegisteredBy: m.RegisteredBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toVolunteerModel(e *VolunteerEntity) *model.Volunteer {
	if e == nil {
		return nil
	}
	return &model.Volunteer{
		ID:                  e.ID,
		Name:                e.Name,
		Email:               e.Email,
		Phone:               e.Phone,
		Skills:              toStrings(e.Skills),
		Availability:        e.Availability,
		Interests:           toStrings(e.Interests),
		Status:              model.VolunteerStatus(e.Status),
		RegisteredBy:        e.RegisteredBy,
		RegisteredByDetails: toUserSummary(e.RegisteredByUser),
		CreatedAt:           utc(e.CreatedAt),
		UpdatedAt:           utc(e.UpdatedAt),
	}
}

func toVolunteerModels(entities []*VolunteerEntity) []*model.Volunteer {
	models := make([]*model.Volunteer, len(entities))
	for i, e := range entities {
		models[i] = toVolunteerModel(e)
	}
	return models
}
