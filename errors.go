package airswap

import "errors"

var (
	// ErrInvalidParam is matched by every *InvalidParamError.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrMakerNotFound is returned when a maker address has no registered URL.
	ErrMakerNotFound = errors.New("maker not found in registry")
)

// InvalidParamError represents an invalid parameter error with context
type InvalidParamError struct {
	Message string
}

func (e *InvalidParamError) Error() string {
	return e.Message
}

func (e *InvalidParamError) Is(target error) bool {
	return target == ErrInvalidParam
}
