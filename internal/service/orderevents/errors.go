package orderevents

import "errors"

var (
	ErrInvalidEvent       = errors.New("invalid order event")
	ErrUndefinedEventType = errors.New("undefined order event type")
)
