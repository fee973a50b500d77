package status

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrUnknownJobKind  = errors.New("unknown job kind")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoStatusMapping = errors.New("no status mapping for kind")
)
