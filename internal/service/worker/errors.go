package worker

import "errors"

var (
	ErrInvalidWorkerID = errors.New("invalid worker id")
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrInvalidPeriod   = errors.New("invalid earnings period")
	ErrUnknownJobKind  = errors.New("unknown job kind")
)
