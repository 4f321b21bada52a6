package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	return oneOf(s, EventPlanned, EventOngoing, EventCompleted, EventCancelled)
}

type Event struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Date               time.Time        `json:"date"`
	Location           string           `json:"location"`
	VolunteersRequired *int             `json:"volunteersRequired"`
	Budget             *decimal.Decimal `json:"budget"`
	Status             EventStatus      `json:"status"`
	Organizer          *int64           `json:"organizer"`
	OrganizerDetails   *UserSummary     `json:"organizerDetails"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

type EventRequest struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Date               *DateTime        `json:"date"`
	Location           string           `json:"location"`
	VolunteersRequired *int             `json:"volunteersRequired"`
	Budget             *decimal.Decimal `json:"budget"`
	Status             EventStatus      `json:"status"`
}

func (p EventRequest) Validate() error {
	if blank(p.Title) {
		return errors.New("title is required")
	}
	if p.Date == nil || p.Date.IsZero() {
		return errors.New("date is required")
	}
	if p.VolunteersRequired != nil && *p.VolunteersRequired < 0 {
		return errors.New("volunteersRequired must not be negative")
	}
	if p.Budget != nil && p.Budget.IsNegative() {
		return errors.New("budget must not be negative")
	}
	if p.Status != "" && !p.Status.Valid() {
		return errors.New("status must be one of planned, ongoing, completed, cancelled")
	}
	return nil
}

// Apply replaces the editable fields of e; an empty status falls back to planned.
func (p EventRequest) Apply(e *Event) {
	e.Title = p.Title
	e.Description = p.Description
	if p.Date != nil {
		e.Date = p.Date.Time
	}
	e.Location = p.Location
	e.VolunteersRequired = p.VolunteersRequired
	e.Budget = p.Budget
	e.Status = p.Status
	if e.Status == "" {
		e.Status = EventPlanned
	}
}
