package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidPassword    = errors.New("models: invalid password")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateService   = errors.New("models: duplicate service name")
	ErrClientNotFound     = errors.New("models: client not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrSavedNotFound      = errors.New("saved company entry not found")
	ErrAlreadyRated       = errors.New("client already rated this company")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyMessage       = errors.New("message content is required")
	ErrBadRecipient       = errors.New("invalid message recipient")
	ErrSessionNotFound    = errors.New("session not found")
)
