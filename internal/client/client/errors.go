package client

import "errors"

var (
	ErrUnavailable = errors.New("password service unavailable")
	ErrRejected    = errors.New("request rejected by password service")
	ErrClosed      = errors.New("client closed")
)
