package domain

import "errors"

var (
	ErrGuidelineNotFound  = errors.New("brand guideline not found")
	ErrBrandNotDetected   = errors.New("brand could not be detected")
	ErrEmptyQuery         = errors.New("query must not be empty")
	ErrMissingURL         = errors.New("url is required")
	ErrMissingObservation = errors.New("website observation is required")
	ErrAuditNotFound      = errors.New("audit not found")
	ErrStoreDisabled      = errors.New("audit store is disabled")
)
