package domain

import "errors"

var (
	// ErrCatalogUnavailable is returned when a catalog backend request fails
	// (network error, non-200 status, or a non-success response envelope)
	ErrCatalogUnavailable = errors.New("catalog backend request failed")

	// ErrStaleFetch is returned when a catalog load was superseded by a newer
	// one before it completed; its result must be discarded
	ErrStaleFetch = errors.New("catalog fetch superseded")

	// ErrSessionNotFound is returned when no live browse session exists for an id
	ErrSessionNotFound = errors.New("browse session not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
