package account

import (
	"errors"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidProfileInput = errors.New("invalid profile input")
	ErrGetProfile          = errors.New("failed to get profile")
	ErrUpdateRole          = errors.New("failed to update role")
	ErrUpdateProfile       = errors.New("failed to update profile")
	ErrListProfiles        = errors.New("failed to list profiles")

	ErrInvalidRole     = domain.ErrInvalidRole
	ErrProfileNotFound = domain.ErrProfileNotFound
	ErrUsernameTaken   = domain.ErrUsernameTaken
)
