package model

import "errors"

var (
	// ErrUnexpectedStatus is returned when the lexical service answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected service status")
	// ErrNoResults is returned when a lookup yields nothing usable.
	ErrNoResults = errors.New("no results")
	// ErrNoMatch is returned when no result matches the queried spelling as a noun.
	ErrNoMatch = errors.New("no exact noun match")
	// ErrAttemptsExhausted is returned when noun resampling hits its cap.
	ErrAttemptsExhausted = errors.New("noun attempts exhausted")
)
