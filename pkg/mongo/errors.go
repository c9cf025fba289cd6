package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("mongo.connect_failed")
	ErrHealthcheckFailed      = errors.New("mongo.healthcheck_failed")
	ErrInvalidServer          = errors.New("mongo.invalid_server")
	ErrInvalidHostPort        = errors.New("mongo.invalid_host_port")
	ErrQueryFailed            = errors.New("mongo.query_failed")
)
