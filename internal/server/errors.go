package server

import "errors"

// Inspector errors
var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrServerClosed         = errors.New("server is closed")
	ErrInvalidConfig        = errors.New("invalid server configuration")
)
