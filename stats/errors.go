package stats

import "errors"

var (
	// ErrInvalidArgument is returned for out-of-set enum values and for empty input where a result is required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrParse is returned when a worth string does not hold a currency-prefixed decimal.
	ErrParse = errors.New("parse error")
)
