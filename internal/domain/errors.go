package domain

import "errors"

// Domain errors
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrSlugTaken     = errors.New("an event with this slug already exists")

	// Mint denial reasons, in evaluator check order
	ErrNotConfigured    = errors.New("wallet or contract not configured")
	ErrPasswordRequired = errors.New("event password is required")
	ErrPasswordInvalid  = errors.New("event password is incorrect")
	ErrEventNotStarted  = errors.New("event has not started yet")
	ErrEventEnded       = errors.New("event has ended")
	ErrSoldOut          = errors.New("mint cap has been reached")
)
