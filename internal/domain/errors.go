// Package domain holds sentinel errors shared across layers.
package domain

import "errors"

var (
	// ErrInvalidCriteria signals a rejected extraction request.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrScoringProviderError signals a transport-level scoring provider failure.
	ErrScoringProviderError = errors.New("scoring provider error")
	// ErrMalformedScoringResponse signals a provider response that failed to parse.
	ErrMalformedScoringResponse = errors.New("malformed scoring response")
)
