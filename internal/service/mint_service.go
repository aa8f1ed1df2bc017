package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/eligibility"
	"github.com/shizuku355/suiquest-jp/internal/repository"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
)

// MintConfig holds the contract coordinates for mint calls
type MintConfig struct {
	PackageID     string
	ClockObjectID string
	// ActivityTopic is the bus topic for mint activity; ignored when
	// no publisher is attached
	ActivityTopic string
}

type mintService struct {
	events    repository.EventRepository
	relay     TransactionRelay
	publisher ActivityPublisher
	cfg       MintConfig
	now       func() time.Time
}

// NewMintService creates the mint eligibility and relay service.
// publisher may be nil when the message bus is disabled.
func NewMintService(events repository.EventRepository, relay TransactionRelay, publisher ActivityPublisher, cfg MintConfig) MintService {
	return &mintService{
		events:    events,
		relay:     relay,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// PrepareMint runs the eligibility checks for a caller against an event.
// A denial is not an error: the response carries the reason and the
// handler maps it to a status code. Only an eligible outcome includes
// the unsigned call payload.
func (s *mintService) PrepareMint(ctx context.Context, slug, caller, password string) (*dto.MintResponse, error) {
	event, err := s.events.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	reason := eligibility.Evaluate(&eligibility.Request{
		Event:         event,
		Password:      password,
		NowMs:         s.now().UnixMilli(),
		CallerAddress: caller,
		PackageID:     s.cfg.PackageID,
	})

	resp := &dto.MintResponse{
		Eligible: reason == eligibility.ReasonEligible,
		Reason:   string(reason),
	}
	if !resp.Eligible {
		return resp, nil
	}

	resp.Call = &dto.MoveCall{
		PackageID: s.cfg.PackageID,
		Module:    "core",
		Function:  "mint_pass",
		Arguments: []string{event.ID, s.cfg.ClockObjectID},
	}
	return resp, nil
}

// mintActivity is the record published to the message bus after a
// successful relay
type mintActivity struct {
	ID       string `json:"id"`
	Caller   string `json:"caller"`
	TxDigest string `json:"tx_digest"`
	Occurred int64  `json:"occurred_ms"`
}

// RelayTransaction submits signed bytes and, on success, drops the
// cached projection so the next read reflects the new minted count.
// Counts are never adjusted locally.
func (s *mintService) RelayTransaction(ctx context.Context, caller string, req *dto.RelayRequest) (*dto.RelayResponse, error) {
	result, err := s.relay.ExecuteTransaction(ctx, req.TxBytes, req.Signature)
	if err != nil {
		return nil, err
	}

	if ierr := s.events.Invalidate(ctx); ierr != nil {
		logger.Get().Warn("event cache invalidation after relay failed", zap.Error(ierr))
	}

	if s.publisher != nil {
		activity := mintActivity{
			ID:       uuid.New().String(),
			Caller:   caller,
			TxDigest: result.Digest,
			Occurred: s.now().UnixMilli(),
		}
		if perr := s.publisher.ProduceJSON(ctx, s.cfg.ActivityTopic, caller, activity, nil); perr != nil {
			logger.Get().Warn("mint activity publish failed",
				zap.String("digest", result.Digest),
				zap.Error(perr),
			)
		}
	}

	return &dto.RelayResponse{
		Digest: result.Digest,
		Status: result.Status,
	}, nil
}
