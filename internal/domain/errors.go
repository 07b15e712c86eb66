package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidNameKey  = errors.New("invalid name key: must be 1-128 characters of [A-Za-z0-9._-]")
	ErrInvalidDocument = errors.New("invalid stored name document")
)
