package repository

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DonationEntity struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id"`
	DonorName     string          `gorm:"column:donor_name;not null"`
	DonorEmail    string          `gorm:"column:donor_email;not null;default:''"`
	DonorPhone    string          `gorm:"column:donor_phone;not null;default:''"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null"`
	DonationType  *string         `gorm:"column:donation_type"`
	PaymentMethod *string         `gorm:"column:payment_method"`
	Date          time.Time       `gorm:"column:donation_date;not null;index"`
	Notes         string          `gorm:"column:notes;not null;default:''"`
	RecordedBy    *int64          `gorm:"column:recorded_by"`
	Status        string          `gorm:"column:status;not null;default:pending"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (DonationEntity) TableName() string {
	return "donations"
}

func (e *DonationEntity) BeforeSave(*gorm.DB) error {
	if dt := fromNullable[model.DonationType](e.DonationType); dt != "" {
		if err := checkEnum("donation_type", string(dt), dt.Valid()); err != nil {
			return err
		}
	}
	if pm := fromNullable[model.PaymentMethod](e.PaymentMethod); pm != "" {
		if err := checkEnum("payment_method", string(pm), pm.Valid()); err != nil {
			return err
		}
	}
	return checkEnum("status", e.Status, model.DonationStatus(e.Status).Valid())
}

func toDonationEntity(m *model.Donation) *DonationEntity {
	if m == nil {
		return nil
	}
	return &DonationEntity{
		ID:            m.ID,
		DonorName:     m.DonorName,
		DonorEmail:    m.DonorEmail,
		DonorPhone:    m.DonorPhone,
		Amount:        m.Amount,
		DonationType:  nullable(m.DonationType),
		PaymentMethod: nullable(m.PaymentMethod),
		Date:          m.Date,
		Notes:         m.Notes,
		RecordedBy:    m.RecordedBy,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDonationModel(e *DonationEntity) *model.Donation {
	if e == nil {
		return nil
	}
	return &model.Donation{
		ID:            e.ID,
		DonorName:     e.DonorName,
		DonorEmail:    e.DonorEmail,
		DonorPhone:    e.DonorPhone,
		Amount:        e.Amount,
		DonationType:  fromNullable[model.DonationType](e.DonationType),
		PaymentMethod: fromNullable[model.PaymentMethod](e.PaymentMethod),
		Date:          utc(e.Date),
		Notes:         e.Notes,
		RecordedBy:    e.RecordedBy,
		Status:        model.DonationStatus(e.Status),
		CreatedAt:     utc(e.CreatedAt),
		UpdatedAt:     utc(e.UpdatedAt),
	}
}

func toDonationModels(entities []*DonationEntity) []*model.Donation {
	models := make([]*model.Donation, len(entities))
	for i, e := range entities {
		models[i] = toDonationModel(e)
	}
	return models
}
