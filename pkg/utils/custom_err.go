package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDraftNotFound     = errors.New("draft not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	// ErrPersonalityNotFound means the user has not taken the quiz yet.
	ErrPersonalityNotFound = errors.New("personality not found")
	ErrDatabaseError       = errors.New("database error")
	ErrRemoteUnavailable   = errors.New("trip service unavailable")
	// ErrSubmissionFailed means the trip API did not accept the itinerary.
	// The draft is kept so the user can retry.
	ErrSubmissionFailed = errors.New("itinerary submission failed")
	// ErrSubmissionInProgress rejects a second submit of the same draft.
	ErrSubmissionInProgress = errors.New("itinerary submission in progress")
)
