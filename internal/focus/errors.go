package focus

import "errors"

var (
	ErrSessionNotFound = errors.New("focus session not found")
	ErrSessionEnded    = errors.New("focus session already ended")
	ErrInvalidType     = errors.New("invalid session type")
)
