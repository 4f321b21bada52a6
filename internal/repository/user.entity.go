package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"gorm.io/gorm"
)

type UserEntity struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:staff"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserEntity) TableName() string {
	return "users"
}

func (e *UserEntity) BeforeSave(*gorm.DB) error {
	return checkEnum("role", e.Role, model.Role(e.Role).Valid())
}

func toUserEntity(m *model.User) *UserEntity {
	if m == nil {
		return nil
	}
	return &UserEntity{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         string(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         model.Role(e.Role),
		CreatedAt:    utc(e.CreatedAt),
		UpdatedAt:    utc(e.UpdatedAt),
	}
}

func toUserSummary(e *UserEntity) *model.UserSummary {
	if e == nil || e.ID == 0 {
		return nil
	}
	return &model.UserSummary{Name: e.Name, Email: e.Email}
}
