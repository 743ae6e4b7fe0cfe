package arrays

import "errors"

// ErrEmpty is returned when an operation needs at least one element.
var ErrEmpty = errors.New("empty slice")

// ErrInvalidSteps is returned when a stepped range is requested with fewer than two steps.
var ErrInvalidSteps = errors.New("steps must be at least 2")

// ErrInvalidChunkSize is returned when the chunk size is lower than one.
var ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

// ErrTrimPercentRange is returned when the trim percentage is outside [1, 99].
var ErrTrimPercentRange = errors.New("trim percent must be between 1 and 99 (inclusive)")
