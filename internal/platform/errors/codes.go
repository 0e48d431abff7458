// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Numeral errors
	CodeNumeralOutOfRange  Code = "NUMERAL_OUT_OF_RANGE"
	CodeNumeralParseFailed Code = "NUMERAL_PARSE_FAILED"
	CodeNumeralInvalidCase Code = "NUMERAL_INVALID_CASE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNumeralOutOfRange:
		return codes.OutOfRange
	case CodeNumeralParseFailed,
		CodeNumeralInvalidCase:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
