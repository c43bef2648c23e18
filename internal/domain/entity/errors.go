package entity

import "errors"

// Standard domain errors
var (
	ErrInvalidRequest      = errors.New("invalid request parameters")
	ErrProviderUnavailable = errors.New("AI provider is not available")
	ErrEmptyCompletion     = errors.New("AI provider returned an empty completion")
	ErrInvalidModelOutput  = errors.New("AI provider output does not match the recommendation schema")
)
