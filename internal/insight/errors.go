package insight

import "errors"

var (
	ErrInvalidDays = errors.New("days must be between 1 and 90")
)
