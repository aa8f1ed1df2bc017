package service

import (
	"context"
	"time"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/repository"
)

type eventService struct {
	events repository.EventRepository
	now    func() time.Time
}

// NewEventService creates the public event catalogue service
func NewEventService(events repository.EventRepository) EventService {
	return &eventService{
		events: events,
		now:    time.Now,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*dto.EventResponse, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewEventListResponse(events, s.now().UnixMilli()), nil
}

func (s *eventService) GetEvent(ctx context.Context, slug string) (*dto.EventResponse, error) {
	event, err := s.events.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return dto.NewEventResponse(event, s.now().UnixMilli()), nil
}
