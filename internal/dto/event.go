package dto

import (
	"strings"

	"github.com/shizuku355/suiquest-jp/internal/domain"
)

// EventResponse is the public view of a projected event
type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	StartMs     int64  `json:"start_ms"`
	EndMs       int64  `json:"end_ms"`
	Cap         int64  `json:"cap"`
	Minted      int64  `json:"minted"`
	Remaining   int64  `json:"remaining"`
	Status      string `json:"status"`
	SoldOut     bool   `json:"sold_out"`
}

// NewEventResponse builds the response view for one event at a given moment
func NewEventResponse(event *domain.Event, nowMs int64) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Slug:        event.Slug,
		Description: event.Description,
		ImageURL:    event.ImageURL,
		StartMs:     event.StartMs,
		EndMs:       event.EndMs,
		Cap:         event.Cap,
		Minted:      event.Minted,
		Remaining:   event.Remaining(),
		Status:      event.Status(nowMs),
		SoldOut:     event.SoldOut(),
	}
}

// NewEventListResponse builds response views for a list of events
func NewEventListResponse(events []*domain.Event, nowMs int64) []*EventResponse {
	out := make([]*EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, NewEventResponse(event, nowMs))
	}
	return out
}

// CreateEventRequest is the admin request to create a new event
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StartMs     int64  `json:"start_ms" binding:"required"`
	EndMs       int64  `json:"end_ms" binding:"required"`
	Cap         int64  `json:"cap" binding:"required"`
}

// Validate validates the create event request
func (r *CreateEventRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "name is required"
	}
	if strings.TrimSpace(r.Slug) == "" {
		return false, "slug is required"
	}
	if r.StartMs <= 0 || r.EndMs <= 0 {
		return false, "start_ms and end_ms must be positive"
	}
	if r.StartMs >= r.EndMs {
		return false, "start_ms must be before end_ms"
	}
	if r.Cap <= 0 {
		return false, "cap must be positive"
	}
	return true, ""
}

// UpdateEventRequest is the admin request to update event details.
// The mint window and cap are fixed at creation and stay untouched.
type UpdateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Validate validates the update event request
func (r *UpdateEventRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "name is required"
	}
	return true, ""
}
