package model

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

type ProgramStatus string

const (
	ProgramDraft    ProgramStatus = "draft"
	ProgramActive   ProgramStatus = "active"
	ProgramArchived ProgramStatus = "archived"
)

func (s ProgramStatus) Valid() bool {
	return oneOf(s, ProgramDraft, ProgramActive, ProgramArchived)
}

// FeaturedProgramsLimit caps the featured list.
const FeaturedProgramsLimit = 3

type Program struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	Image       string        `json:"image"`
	Status      ProgramStatus `json:"status"`
	IsFeatured  bool          `json:"isFeatured"`
	Slug        string        `json:"slug"`
	CreatedBy   *int64        `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ProgramSummary is the public list projection.
type ProgramSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Slug        string `json:"slug"`
}

func (p *Program) Summary() ProgramSummary {
	return ProgramSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Slug:        p.Slug,
	}
}

type ProgramRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	Image       string        `json:"image"`
	Status      ProgramStatus `json:"status"`
	IsFeatured  bool          `json:"isFeatured"`
}

func (p ProgramRequest) Validate() error {
	if blank(p.Title) {
		return errors.New("title is required")
	}
	if blank(p.Description) {
		return errors.New("description is required")
	}
	if p.Status != "" && !p.Status.Valid() {
		return errors.New("status must be one of draft, active, archived")
	}
	return nil
}

// Apply replaces the editable fields; the slug is left alone.
func (p ProgramRequest) Apply(prg *Program) {
	prg.Title = p.Title
	prg.Description = p.Description
	prg.Content = p.Content
	prg.Image = p.Image
	prg.IsFeatured = p.IsFeatured
	prg.Status = p.Status
	if prg.Status == "" {
		prg.Status = ProgramDraft
	}
}

// Slugify lowercases title and joins its ASCII letter and digit runs with "-".
func Slugify(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "program"
	}
	return b.String()
}
