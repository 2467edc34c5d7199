package config

import "errors"

// ErrAlreadyParsed is returned when a Parser is asked to
// parse its flags more than once
var ErrAlreadyParsed = errors.New("configuration has already been parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

// Unwrap returns the cause of the failure
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
