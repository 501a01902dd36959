package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPreferencesNotSet  = errors.New("user preferences not set")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrStoryNotFound      = errors.New("local story not found")
	ErrPOINotFound        = errors.New("poi not found")
)
