package domain

import "errors"

var (
	ErrValidation = errors.New("invalid email address")
	ErrNotFound   = errors.New("project not found")
	ErrConflict   = errors.New("project already exists for this email")
)
