package mongosession

import "errors"

var (
	ErrUnknownBackend   = errors.New("mongosession.unknown_backend")
	ErrInvalidLogFormat = errors.New("mongosession.invalid_log_format")
)
