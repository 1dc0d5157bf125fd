package utils

import "errors"

var (
	// Hard: the place never resolved to coordinates, so no geometric
	// estimate is possible for legs touching it.
	ErrGeocodeNotFound = errors.New("geocode not found")

	// Soft: the provider had no route, but a geometric estimate is
	// available once both endpoints have coordinates.
	ErrRouteNotFound = errors.New("route not found")

	// Soft: the duration matrix contains an unreachable place; callers
	// fall back to the input order.
	ErrOptimizationInfeasible = errors.New("route optimization infeasible")

	// Soft: a candidate record is missing required fields and was skipped.
	ErrMalformedCandidate = errors.New("malformed venue candidate")

	ErrVenueNotFound   = errors.New("venue not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
