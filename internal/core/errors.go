package core

import "errors"

var (
	// ErrEmptyInput is returned when neither body nor attachment holds usable text
	ErrEmptyInput = errors.New("empty input: no usable text")
	// ErrAuth is returned by backends when the credential is rejected
	ErrAuth = errors.New("remote classifier rejected credential")
	// ErrModelLoading is returned while the remote model is warming up
	ErrModelLoading = errors.New("remote model is loading")
	// ErrTransport covers network failures, timeouts and unexpected statuses
	ErrTransport = errors.New("remote classifier unreachable")
	// ErrMalformedResponse is returned when the oracle answer has an unexpected shape
	ErrMalformedResponse = errors.New("malformed remote classifier response")
)
