package services

import (
	"context"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type EventRepository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) List(ctx context.Context) ([]*model.Event, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrEventNotFound, "list events")
	}
	return out, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrEventNotFound, "get event")
	}
	return e, nil
}

func (s *EventService) Create(ctx context.Context, identity *model.Identity, req model.EventRequest) (*model.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	e := &model.Event{Organizer: ownerID(identity)}
	req.Apply(e)

	out, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, translate(err, ErrEventNotFound, "create event")
	}
	return out, nil
}

func (s *EventService) Update(ctx context.Context, id int64, req model.EventRequest) (*model.Event, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	req.Apply(existing)

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, translate(err, ErrEventNotFound, "update event")
	}
	return out, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), ErrEventNotFound, "delete event")
}
