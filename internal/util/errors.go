package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrProfileNotFound     = errors.New("patient profile not found")
	ErrNoScreening         = errors.New("no questionnaire submission on record")
	ErrResultsIncomplete   = errors.New("not all modality tests are completed")
	ErrSessionNotFound     = errors.New("vision session not found or expired")
	ErrInferenceFailed     = errors.New("inference service unavailable")
	ErrUnsupportedLanguage = errors.New("unsupported report language")
)
