package service

import (
	"context"
	"strconv"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/repository"
)

type adminService struct {
	events    repository.EventRepository
	packageID string
}

// NewAdminService creates the admin event management service. Like the
// mint path it only builds unsigned calls; the admin wallet signs and
// the relay endpoint submits.
func NewAdminService(events repository.EventRepository, packageID string) AdminService {
	return &adminService{
		events:    events,
		packageID: packageID,
	}
}

func (s *adminService) PrepareCreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.MoveCall, error) {
	// Slug collisions would shadow the older event in lookups
	existing, err := s.events.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	return &dto.MoveCall{
		PackageID: s.packageID,
		Module:    "core",
		Function:  "create_event",
		Arguments: []string{
			req.Name,
			req.Slug,
			req.ImageURL,
			req.Description,
			strconv.FormatInt(req.StartMs, 10),
			strconv.FormatInt(req.EndMs, 10),
			strconv.FormatInt(req.Cap, 10),
		},
	}, nil
}

func (s *adminService) PrepareUpdateEvent(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*dto.MoveCall, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	return &dto.MoveCall{
		PackageID: s.packageID,
		Module:    "core",
		Function:  "update_event_details",
		Arguments: []string{
			event.ID,
			req.Name,
			req.Description,
			req.ImageURL,
		},
	}, nil
}
