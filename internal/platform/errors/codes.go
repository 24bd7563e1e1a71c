// Package errors provides structured error handling for the encounter tools.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Table errors
	CodeTableNotFound  Code = "TABLE_NOT_FOUND"
	CodeTableIO        Code = "TABLE_IO"
	CodeTableMalformed Code = "TABLE_MALFORMED"

	// Level errors
	CodeLevelInvalidToken Code = "LEVEL_INVALID_TOKEN"
	CodeLevelOutOfRange   Code = "LEVEL_OUT_OF_RANGE"
	CodeLevelOutOfTable   Code = "LEVEL_OUT_OF_TABLE"
)
