package rules

import "errors"

var (
	ErrSubContinentTooLarge   = errors.New("sub-continent goal asks for more territories than the continent has")
	ErrPlayerAlreadyDestroyed = errors.New("player already destroyed")
	ErrInvalidGoal            = errors.New("invalid goal")
)
