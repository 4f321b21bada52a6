package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type ContactEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null;default:''"`
	Phone     string    `gorm:"column:phone;not null;default:''"`
	Subject   string    `gorm:"column:subject;not null;default:''"`
	Message   string    `gorm:"column:message;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

func (ContactEntity) TableName() string {
	return "contacts"
}

func toContactEntity(m *model.Contact) *ContactEntity {
	if m == nil {
		return nil
	}
	return &ContactEntity{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func toContactModel(e *ContactEntity) *model.Contact {
	if e == nil {
		return nil
	}
	return &model.Contact{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Subject:   e.Subject,
		Message:   e.Message,
		CreatedAt: utc(e.CreatedAt),
	}
}
