package model

import "fmt"

// RangeError reports an integer that does not fit its unsigned target width
type RangeError struct {
	Field string
	Value int64
	Max   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// UnknownModeError reports a mode code outside the variant's mapping
type UnknownModeError struct {
	Code int64
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("%d is not a valid mode", e.Code)
}

// TimestampFormatError reports a Created value not in YYYY-MM-DD HH:MM:SS form
type TimestampFormatError struct {
	Value string
	Err   error
}

func (e *TimestampFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid timestamp %q", e.Value)
}

func (e *TimestampFormatError) Unwrap() error {
	return e.Err
}
