package entity

import "errors"

// Domain errors
var (
	// Auth errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("admin access required")
	ErrEmailNotVerified = errors.New("email not verified")
	ErrDomainNotAllowed = errors.New("email domain not allowed")
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")

	// Generation errors
	ErrMissingUserMessage = errors.New("missing user message")
	ErrAPIKeyNotSet       = errors.New("gemini api key not configured in admin settings")
	ErrUnknownChannel     = errors.New("unknown generation channel")
	ErrGenerationFailed   = errors.New("generation failed")

	// Settings errors
	ErrInvalidCategory = errors.New("invalid settings category")
	ErrMissingPayload  = errors.New("missing category or data")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
