package app

import "errors"

// Sentinel error kinds for the ranker boundary. Callers can match them with
// errors.Is; validator detail is wrapped alongside.
var (
	ErrInvalidTalent  = errors.New("invalid talent profile")
	ErrInvalidProject = errors.New("invalid project requirements")
	ErrEmptyPool      = errors.New("candidate pool is empty")
	ErrInvalidWeights = errors.New("aggregation weights must sum to 1.0")
)
