package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("redis.bad_connection_url")
	ErrRedisNotReady                = errors.New("redis.not_ready")
	ErrEmptyConnectionURL           = errors.New("redis.empty_connection_url")
	ErrHealthcheckFailed            = errors.New("redis.healthcheck_failed")
	ErrCorruptRecord                = errors.New("redis.corrupt_record")
	ErrCommandFailed                = errors.New("redis.command_failed")
)
