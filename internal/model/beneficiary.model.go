package model

import (
	"errors"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid accepts the empty value; gender is optional.
func (g Gender) Valid() bool {
	return g == "" || oneOf(g, GenderMale, GenderFemale, GenderOther)
}

type BeneficiaryCategory string

const (
	CategoryChild    BeneficiaryCategory = "child"
	CategoryWoman    BeneficiaryCategory = "woman"
	CategorySenior   BeneficiaryCategory = "senior"
	CategoryDisabled BeneficiaryCategory = "disabled"
	CategoryOther    BeneficiaryCategory = "other"
)

func (c BeneficiaryCategory) Valid() bool {
	return c == "" || oneOf(c, CategoryChild, CategoryWoman, CategorySenior, CategoryDisabled, CategoryOther)
}

type Beneficiary struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Age       *int                `json:"age"`
	Gender    Gender              `json:"gender"`
	Contact   string              `json:"contact"`
	Address   string              `json:"address"`
	Category  BeneficiaryCategory `json:"category"`
	Notes     string              `json:"notes"`
	CreatedBy *int64              `json:"createdBy"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// BeneficiaryRequest is the body accepted by create and update.
type BeneficiaryRequest struct {
	Name     string              `json:"name"`
	Age      *int                `json:"age"`
	Gender   Gender              `json:"gender"`
	Contact  string              `json:"contact"`
	Address  string              `json:"address"`
	Category BeneficiaryCategory `json:"category"`
	Notes    string              `json:"notes"`
}

func (p BeneficiaryRequest) Validate() error {
	if blank(p.Name) {
		return errors.New("name is required")
	}
	if p.Age != nil && *p.Age < 0 {
		return errors.New("age must not be negative")
	}
	if !p.Gender.Valid() {
		return errors.New("gender must be one of male, female, other")
	}
	if !p.Category.Valid() {
		return errors.New("category must be one of child, woman, senior, disabled, other")
	}
	return nil
}

// Apply copies the request onto b, replacing every editable field.
func (p BeneficiaryRequest) Apply(b *Beneficiary) {
	b.Name = p.Name
	b.Age = p.Age
	b.Gender = p.Gender
	b.Contact = p.Contact
	b.Address = p.Address
	b.Category = p.Category
	b.Notes = p.Notes
}
