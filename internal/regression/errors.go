package regression

import "errors"

// Regression errors.
var (
	// ErrInsufficientObservations is returned when a fit has no residual degrees of freedom.
	ErrInsufficientObservations = errors.New("insufficient observations for regression")

	// ErrNoPredictors is returned when the inclusion policy rejects every candidate.
	ErrNoPredictors = errors.New("no predictors included")

	// ErrDimension is returned when predictor and target lengths differ.
	ErrDimension = errors.New("dimension mismatch")
)
