package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type DonationType string

const (
	DonationTypeCash   DonationType = "cash"
	DonationTypeCheck  DonationType = "check"
	DonationTypeOnline DonationType = "online"
	DonationTypeGoods  DonationType = "goods"
	DonationTypeOther  DonationType = "other"
)

func (t DonationType) Valid() bool {
	return oneOf(t, DonationTypeCash, DonationTypeCheck, DonationTypeOnline, DonationTypeGoods, DonationTypeOther)
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentUPI          PaymentMethod = "upi"
	PaymentCash         PaymentMethod = "cash"
	PaymentOnline       PaymentMethod = "online"
	PaymentOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	return oneOf(m, PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer, PaymentUPI, PaymentCash, PaymentOnline, PaymentOther)
}

// DefaultDonationType maps a payment method to the donation type used when
// the caller does not name one.
func (m PaymentMethod) DefaultDonationType() DonationType {
	switch m {
	case PaymentCash:
		return DonationTypeCash
	case PaymentOnline:
		return DonationTypeOnline
	default:
		return DonationTypeOther
	}
}

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

func (s DonationStatus) Valid() bool {
	return oneOf(s, DonationPending, DonationCompleted, DonationFailed)
}

type Donation struct {
	ID            int64           `json:"id"`
	DonorName     string          `json:"donorName"`
	DonorEmail    string          `json:"donorEmail"`
	DonorPhone    string          `json:"donorPhone"`
	Amount        decimal.Decimal `json:"amount"`
	DonationType  DonationType    `json:"donationType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes"`
	RecordedBy    *int64          `json:"recordedBy"`
	Status        DonationStatus  `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type DonorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DonationCreateRequest is the public donation form.
type DonationCreateRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	DonorName     string           `json:"donorName"`
	DonorInfo     *DonorInfo       `json:"donorInfo"`
	DonationType  DonationType     `json:"donationType"`
	Notes         string           `json:"notes"`
}

var ErrDonationMissingFields = errors.New("Missing required fields: amount, paymentMethod, and donor information are required")

// ResolvedDonorName prefers donorName over donorInfo.name.
func (p DonationCreateRequest) ResolvedDonorName() string {
	if !blank(p.DonorName) {
		return p.DonorName
	}
	if p.DonorInfo != nil {
		return p.DonorInfo.Name
	}
	return ""
}

func (p DonationCreateRequest) Validate() error {
	if p.Amount == nil || p.Amount.IsZero() || p.PaymentMethod == "" || blank(p.ResolvedDonorName()) {
		return ErrDonationMissingFields
	}
	if p.Amount.IsNegative() {
		return errors.New("amount must be positive")
	}
	if !p.PaymentMethod.Valid() {
		return errors.New("paymentMethod must be one of credit_card, debit_card, bank_transfer, upi, cash, online, other")
	}
	if p.DonationType != "" && !p.DonationType.Valid() {
		return errors.New("donationType must be one of cash, check, online, goods, other")
	}
	return nil
}

// DonationUpdateRequest replaces the editable fields of a recorded donation.
// Status only changes through the payment callbacks.
type DonationUpdateRequest struct {
	DonorName     string           `json:"donorName"`
	Amount        *decimal.Decimal `json:"amount"`
	DonationType  DonationType     `json:"donationType"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	Date          *DateTime        `json:"date"`
	Notes         string           `json:"notes"`
}

func (p DonationUpdateRequest) Validate() error {
	if blank(p.DonorName) {
		return errors.New("donorName is required")
	}
	if p.Amount == nil {
		return errors.New("amount is required")
	}
	if !p.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if p.PaymentMethod != "" && !p.PaymentMethod.Valid() {
		return errors.New("paymentMethod must be one of credit_card, debit_card, bank_transfer, upi, cash, online, other")
	}
	if p.DonationType != "" && !p.DonationType.Valid() {
		return errors.New("donationType must be one of cash, check, online, goods, other")
	}
	return nil
}

// DonationReceipt is returned by the public create endpoint.
type DonationReceipt struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	DonationID  int64           `json:"donationId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentLink *string         `json:"paymentLink"`
	Donation    *Donation       `json:"donation"`
}
