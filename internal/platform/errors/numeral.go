package errors

import (
	"errors"
	"strconv"

	"github.com/louisbranch/arithmos/internal/platform/errors/i18n"
	"github.com/louisbranch/arithmos/internal/platform/i18n/catalog"
	"github.com/louisbranch/arithmos/numeral"
)

// Parse failure reasons carried in the "Reason" metadata key.
const (
	ReasonEmpty          = "EMPTY"
	ReasonMissingPrime   = "MISSING_PRIME"
	ReasonUnknownGlyph   = "UNKNOWN_GLYPH"
	ReasonDanglingMarker = "DANGLING_MARKER"
	ReasonOrder          = "ORDER"
)

// FromNumeral lifts errors from the numeral package into domain errors.
// Domain errors and unrelated errors are returned unchanged.
func FromNumeral(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	var rangeErr *numeral.OutOfRangeError
	if errors.As(err, &rangeErr) {
		return WrapWithMetadata(CodeNumeralOutOfRange, err.Error(), map[string]string{
			"Value": rangeErr.Value,
		}, err)
	}
	var parseErr *numeral.ParseError
	if errors.As(err, &parseErr) {
		return WrapWithMetadata(CodeNumeralParseFailed, err.Error(), map[string]string{
			"Input":  parseErr.Input,
			"Offset": strconv.Itoa(parseErr.Offset),
			"Reason": parseReason(parseErr.Err),
		}, err)
	}
	var caseErr *numeral.CaseError
	if errors.As(err, &caseErr) {
		return WrapWithMetadata(CodeNumeralInvalidCase, err.Error(), map[string]string{
			"Case": caseErr.Name,
		}, err)
	}
	return err
}

func parseReason(err error) string {
	switch {
	case errors.Is(err, numeral.ErrEmpty):
		return ReasonEmpty
	case errors.Is(err, numeral.ErrMissingPrime):
		return ReasonMissingPrime
	case errors.Is(err, numeral.ErrUnknownGlyph):
		return ReasonUnknownGlyph
	case errors.Is(err, numeral.ErrDanglingMarker):
		return ReasonDanglingMarker
	case errors.Is(err, numeral.ErrOrder):
		return ReasonOrder
	default:
		return ""
	}
}

// Localize renders the user-facing message for err in the requested locale.
// Errors that are neither domain, numeral nor localized status errors keep
// their own text.
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if !errors.As(FromNumeral(FromGRPCStatus(err)), &appErr) {
		if msg, ok := LocalizedMessage(err); ok {
			return msg
		}
		return err.Error()
	}

	cat := i18n.GetCatalog(localeOrDefault(locale))
	if !cat.Has(string(appErr.Code)) {
		return cat.Format(string(CodeUnknown), nil)
	}

	metadata := make(map[string]string, len(appErr.Metadata)+2)
	for key, value := range appErr.Metadata {
		metadata[key] = value
	}
	if appErr.Code == CodeNumeralOutOfRange {
		printer := catalog.Default().Printer(cat.Locale())
		metadata["Min"] = printer.Sprintf("%d", numeral.Min)
		metadata["Max"] = printer.Sprintf("%d", numeral.Max)
	}
	if reason, ok := metadata["Reason"]; ok && reason != "" {
		metadata["Reason"] = cat.Format("REASON_"+reason, nil)
	}
	return cat.Format(string(appErr.Code), metadata)
}
