// Package projection derives typed Event records from raw ledger query
// results. It is pure: the two inputs are a snapshot supplied by the
// caller, and malformed entries are dropped rather than propagated.
package projection

import (
	"strconv"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/ledger"
)

// EventIDs extracts the created-object ids from a notification sequence,
// dropping empty values and collapsing duplicates while preserving
// first-seen order. Callers treat the order as display order.
func EventIDs(notifications []ledger.EventNotification) []string {
	seen := make(map[string]struct{}, len(notifications))
	ids := make([]string, 0, len(notifications))

	for i := range notifications {
		id := notifications[i].EventID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Events projects object lookup results into fully-typed events. Results
// whose content is not a structured move object are skipped; the output
// never contains partial records. Order follows the input order, which the
// ledger keeps aligned with the requested id order.
func Events(objects []ledger.ObjectResult) []*domain.Event {
	events := make([]*domain.Event, 0, len(objects))
	for i := range objects {
		if event := projectEvent(&objects[i]); event != nil {
			events = append(events, event)
		}
	}
	return events
}

func projectEvent(obj *ledger.ObjectResult) *domain.Event {
	if !obj.IsMoveObject() {
		return nil
	}

	fields := obj.Data.Content.Fields
	return &domain.Event{
		ID:          obj.Data.ObjectID,
		Name:        fields["name"],
		Slug:        fields["slug"],
		Description: fields["description"],
		ImageURL:    fields["image_url"],
		StartMs:     parseInt64(fields["start_ms"]),
		EndMs:       parseInt64(fields["end_ms"]),
		Cap:         parseInt64(fields["cap"]),
		Minted:      parseInt64(fields["minted"]),
		Admin:       fields["admin"],
	}
}

// Passes projects owned-object results into pass records for one holder.
// Display metadata wins over raw fields for name, description and image,
// matching what wallets render.
func Passes(objects []ledger.ObjectResult, holder string) []*domain.Pass {
	passes := make([]*domain.Pass, 0, len(objects))
	for i := range objects {
		obj := &objects[i]
		if obj.Data == nil || obj.Data.ObjectID == "" {
			continue
		}

		pass := &domain.Pass{
			ID:     obj.Data.ObjectID,
			Holder: holder,
		}
		if obj.Data.Content != nil && obj.Data.Content.Fields != nil {
			fields := obj.Data.Content.Fields
			pass.MintedAtMs = parseInt64(fields["minted_at"])
			pass.Name = fields["name"]
			pass.Description = fields["description"]
			pass.ImageURL = fields["image_url"]
		}
		if obj.Data.Display != nil {
			if name := obj.Data.Display.Data["name"]; name != "" {
				pass.Name = name
			}
			if desc := obj.Data.Display.Data["description"]; desc != "" {
				pass.Description = desc
			}
			if img := obj.Data.Display.Data["image_url"]; img != "" {
				pass.ImageURL = img
			}
		}
		passes = append(passes, pass)
	}
	return passes
}

// parseInt64 parses a numeric ledger field, defaulting to 0 on absence or
// malformed input so one bad field never fails the record.
func parseInt64(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
