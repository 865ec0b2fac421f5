package repository

import "errors"

var (
	ErrNotFound  = errors.New("task not found")
	ErrMissingID = errors.New("task id is required")
)
