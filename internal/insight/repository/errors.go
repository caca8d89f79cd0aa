package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert daily stat")
	ErrFailedToList   = errors.New("failed to list daily stats")
)
