package apperrors

import "errors"

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrUnknownGenre    = errors.New("unknown genre")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
