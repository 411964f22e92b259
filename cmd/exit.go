package cmd

import (
	"errors"

	"cropai-modelhub/internal/services"
)

const (
	ExitSuccess = 0

	// ExitFailure covers store and runtime failures.
	ExitFailure = 1

	// ExitInvalidInput means a submission failed validation or an argument
	// was outside its allowed set.
	ExitInvalidInput = 2
)

func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return ExitInvalidInput
	case errors.Is(err, services.ErrUnknownCrop):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
