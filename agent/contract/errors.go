package contract

import "errors"

var (
	ErrModelInvoke   = errors.New("model invoke failed")
	ErrEmptyResponse = errors.New("model returned no message")
	ErrPromptMissing = errors.New("required prompt is missing")
	ErrValidation    = errors.New("validation failed")
)
