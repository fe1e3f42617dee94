package main

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned by any store operation that
	// requires a session while none is established. No network call
	// is made in that case.
	ErrNotAuthenticated = errors.New("not authenticated. please log in")

	// ErrEmptyCart is returned when placing an order over a cart
	// holding zero lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoStoredSession is returned by a vault when no session
	// record exists in the durable storage.
	ErrNoStoredSession = errors.New("no stored session")
)

// NetworkError wraps a transport level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError carries a non-success HTTP status and the human readable
// message extracted from the backend response body. When the body is
// absent or unparseable the message falls back to the HTTP status text.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// AuthenticationError marks a failed login attempt. It wraps the
// underlying server or network error and exposes its message.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return e.Err.Error()
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// RegistrationError marks a failed account registration. It wraps the
// underlying server or network error and exposes its message.
type RegistrationError struct {
	Err error
}

func (e *RegistrationError) Error() string {
	return e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
