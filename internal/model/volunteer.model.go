package model

import (
	"errors"
	"time"
)

type VolunteerStatus string

const (
	VolunteerActive   VolunteerStatus = "active"
	VolunteerInactive VolunteerStatus = "inactive"
	VolunteerPending  VolunteerStatus = "pending"
)

func (s VolunteerStatus) Valid() bool {
	return oneOf(s, VolunteerActive, VolunteerInactive, VolunteerPending)
}

type Volunteer struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Skills              []string        `json:"skills"`
	Availability        string          `json:"availability"`
	Interests           []string        `json:"interests"`
	Status              VolunteerStatus `json:"status"`
	RegisteredBy        *int64          `json:"registeredBy"`
	RegisteredByDetails *UserSummary    `json:"registeredByDetails"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type VolunteerRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Skills       []string        `json:"skills"`
	Availability string          `json:"availability"`
	Interests    []string        `json:"interests"`
	Status       VolunteerStatus `json:"status"`
}

func (p VolunteerRequest) Validate() error {
	if blank(p.Name) {
		return errors.New("name is required")
	}
	if blank(p.Phone) {
		return errors.New("phone is required")
	}
	if p.Status != "" && !p.Status.Valid() {
		return errors.New("status must be one of active, inactive, pending")
	}
	return nil
}

func (p VolunteerRequest) Apply(v *Volunteer) {
	v.Name = p.Name
	v.Email = p.Email
	v.Phone = p.Phone
	v.Skills = nonNil(p.Skills)
	v.Availability = p.Availability
	v.Interests = nonNil(p.Interests)
	v.Status = p.Status
	if v.Status == "" {
		v.Status = VolunteerPending
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
