package domain

// Event status values derived from the campaign window
const (
	EventStatusActive   = "ACTIVE"
	EventStatusUpcoming = "UPCOMING"
	EventStatusEnded    = "ENDED"
)

// Event represents one stamp-rally campaign projected from the ledger.
// The ledger object is the source of truth; this is a point-in-time view.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StartMs     int64  `json:"start_ms"`
	EndMs       int64  `json:"end_ms"`
	Cap         int64  `json:"cap"`
	Minted      int64  `json:"minted"`
	Admin       string `json:"admin"`
}

// Status classifies the event against the given clock reading (ms since epoch).
// Both window bounds are inclusive, so the three states are exclusive and
// exhaustive over the timeline.
func (e *Event) Status(nowMs int64) string {
	if nowMs < e.StartMs {
		return EventStatusUpcoming
	}
	if nowMs > e.EndMs {
		return EventStatusEnded
	}
	return EventStatusActive
}

// SoldOut reports whether the mint cap has been reached.
func (e *Event) SoldOut() bool {
	return e.Minted >= e.Cap
}

// Remaining returns the number of passes still mintable.
func (e *Event) Remaining() int64 {
	if e.Minted >= e.Cap {
		return 0
	}
	return e.Cap - e.Minted
}

// Pass represents a minted pass NFT owned by a wallet.
type Pass struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	MintedAtMs  int64  `json:"minted_at_ms"`
	Holder      string `json:"holder"`
}
