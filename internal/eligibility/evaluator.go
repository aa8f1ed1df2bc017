// Package eligibility decides whether one mint attempt against one event
// should proceed. The evaluator is pure: the clock reading and caller
// identity are supplied by the caller, and no check has side effects.
package eligibility

import (
	"strings"

	"github.com/shizuku355/suiquest-jp/internal/domain"
)

// Reason is the outcome of one eligibility evaluation.
type Reason string

// Evaluation outcomes. All denial reasons are expected, user-facing
// conditions, not failures.
const (
	ReasonEligible         Reason = "ELIGIBLE"
	ReasonNotConfigured    Reason = "NOT_CONFIGURED"
	ReasonPasswordRequired Reason = "PASSWORD_REQUIRED"
	ReasonPasswordInvalid  Reason = "PASSWORD_INVALID"
	ReasonNotStarted       Reason = "NOT_STARTED"
	ReasonEnded            Reason = "ENDED"
	ReasonSoldOut          Reason = "SOLD_OUT"
)

// passwordSuffix is appended to the whitespace-stripped event name to form
// the expected mint password.
const passwordSuffix = "-2025"

// Request carries everything one evaluation needs. NowMs is the clock
// reading in milliseconds since epoch at submission time.
type Request struct {
	Event         *domain.Event
	Password      string
	NowMs         int64
	CallerAddress string
	PackageID     string
}

// ExpectedPassword derives the mint password for an event name: all
// whitespace removed, then the year suffix. "Sui Quest" -> "SuiQuest-2025".
func ExpectedPassword(name string) string {
	return strings.Join(strings.Fields(name), "") + passwordSuffix
}

// Evaluate runs the fixed-order checks and returns the first failing
// reason, or ReasonEligible when all pass. The order is part of the
// contract: configuration, then password presence, then password value,
// then window, then capacity.
func Evaluate(req *Request) Reason {
	if req.Event == nil || req.CallerAddress == "" || req.PackageID == "" {
		return ReasonNotConfigured
	}

	password := strings.TrimSpace(req.Password)
	if password == "" {
		return ReasonPasswordRequired
	}
	if password != ExpectedPassword(req.Event.Name) {
		return ReasonPasswordInvalid
	}

	if req.NowMs < req.Event.StartMs {
		return ReasonNotStarted
	}
	if req.NowMs > req.Event.EndMs {
		return ReasonEnded
	}

	if req.Event.Minted >= req.Event.Cap {
		return ReasonSoldOut
	}

	return ReasonEligible
}

// Err maps a denial reason to its domain error. ReasonEligible maps to nil.
func (r Reason) Err() error {
	switch r {
	case ReasonNotConfigured:
		return domain.ErrNotConfigured
	case ReasonPasswordRequired:
		return domain.ErrPasswordRequired
	case ReasonPasswordInvalid:
		return domain.ErrPasswordInvalid
	case ReasonNotStarted:
		return domain.ErrEventNotStarted
	case ReasonEnded:
		return domain.ErrEventEnded
	case ReasonSoldOut:
		return domain.ErrSoldOut
	default:
		return nil
	}
}
