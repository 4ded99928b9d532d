package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures across the engine
var (
	// ErrTagTransport marks network or connection failures
	ErrTagTransport = goerr.NewTag("transport_error")

	// ErrTagAPI marks non-2xx responses from the remote service
	ErrTagAPI = goerr.NewTag("api_error")

	// ErrTagEnumeration marks a user listing that could not be completed
	ErrTagEnumeration = goerr.NewTag("enumeration_failure")

	// ErrTagInvalidConfig marks configuration rejected at startup
	ErrTagInvalidConfig = goerr.NewTag("invalid_config")
)

// Sentinel errors
var (
	ErrUpdatesFailed   = goerr.New("one or more user updates failed")
	ErrAccountNotFound = goerr.New("account not found")
)
