package errors

import "fmt"

var (
	ErrEmptyCompletion  = fmt.Errorf("empty completion")
	ErrParticipantIndex = fmt.Errorf("participant index out of range")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)
