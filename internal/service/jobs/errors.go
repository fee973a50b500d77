package jobs

import "errors"

var (
	ErrInvalidWorkerID = errors.New("invalid worker id")
	ErrUnknownJobKind  = errors.New("unknown job kind")
)
