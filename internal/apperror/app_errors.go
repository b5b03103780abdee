package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidRequest = errors.New("invalid request")
)
