package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"gorm.io/gorm"
)

type BeneficiaryEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"column:name;not null"`
	Age       *int      `gorm:"column:age"`
	Gender    *string   `gorm:"column:gender"`
	Contact   string    `gorm:"column:contact;not null;default:''"`
	Address   string    `gorm:"column:address;not null;default:''"`
	Category  *string   `gorm:"column:category;index"`
	Notes     string    `gorm:"column:notes;not null;default:''"`
	CreatedBy *int64    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BeneficiaryEntity) TableName() string {
	return "beneficiaries"
}

func (e *BeneficiaryEntity) BeforeSave(*gorm.DB) error {
	gender := fromNullable[model.Gender](e.Gender)
	if err := checkEnum("gender", string(gender), gender.Valid()); err != nil {
		return err
	}
	category := fromNullable[model.BeneficiaryCategory](e.Category)
	return checkEnum("category", string(category), category.Valid())
}

func toBeneficiaryEntity(m *model.Beneficiary) *BeneficiaryEntity {
	if m == nil {
		return nil
	}
	return &BeneficiaryEntity{
		ID:        m.ID,
		Name:      m.Name,
		Age:       m.Age,
		Gender:    nullable(m.Gender),
		Contact:   m.Contact,
		Address:   m.Address,
		Category:  nullable(m.Category),
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBeneficiaryModel(e *BeneficiaryEntity) *model.Beneficiary {
	if e == nil {
		return nil
	}
	return &model.Beneficiary{
		ID:        e.ID,
		Name:      e.Name,
		Age:       e.Age,
		Gender:    fromNullable[model.Gender](e.Gender),
		Contact:   e.Contact,
		Address:   e.Address,
		Category:  fromNullable[model.BeneficiaryCategory](e.Category),
		Notes:     e.Notes,
		CreatedBy: e.CreatedBy,
		CreatedAt: utc(e.CreatedAt),
		UpdatedAt: utc(e.UpdatedAt),
	}
}

func toBeneficiaryModels(entities []*BeneficiaryEntity) []*model.Beneficiary {
	models := make([]*model.Beneficiary, len(entities))
	for i, e := range entities {
		models[i] = toBeneficiaryModel(e)
	}
	return models
}
