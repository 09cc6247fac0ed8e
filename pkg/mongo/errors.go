package mongo

import "errors"

var (
	ErrConnect           = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
