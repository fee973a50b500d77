package assignment

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidWorkerID = errors.New("invalid worker id")
	ErrUnknownJobKind  = errors.New("unknown job kind")
	ErrUnknownAction   = errors.New("unknown worker action")

	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrJobNotFound            = errors.New("job not found")
	ErrAlreadyAssignedToOther = errors.New("job already assigned to another worker")
	ErrNotJobOwner            = errors.New("assignment belongs to another worker")
	ErrKindNotAllowed         = errors.New("job kind not allowed for worker module type")
	ErrInvalidTransition      = errors.New("invalid assignment status transition")
)
