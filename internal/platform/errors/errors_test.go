package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/arithmos/numeral"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCode(t *testing.T) {
	tests := map[Code]codes.Code{
		CodeNumeralOutOfRange:  codes.OutOfRange,
		CodeNumeralParseFailed: codes.InvalidArgument,
		CodeNumeralInvalidCase: codes.InvalidArgument,
		CodeUnknown:            codes.Internal,
	}
	for code, want := range tests {
		if got := code.GRPCCode(); got != want {
			t.Fatalf("%s: expected %v, got %v", code, want, got)
		}
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := New(CodeNumeralParseFailed, "bad")
	if !errors.Is(err, New(CodeNumeralParseFailed, "other")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(err, New(CodeNumeralOutOfRange, "bad")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestFromNumeral(t *testing.T) {
	_, rangeErr := numeral.Encode(1_000_000, numeral.Upper)
	lifted := FromNumeral(rangeErr)
	if !IsCode(lifted, CodeNumeralOutOfRange) {
		t.Fatalf("expected out of range code, got %s", GetCode(lifted))
	}
	var appErr *Error
	if !errors.As(lifted, &appErr) || appErr.Metadata["Value"] != "1000000" {
		t.Fatalf("expected value metadata, got %+v", appErr)
	}
	var coreErr *numeral.OutOfRangeError
	if !errors.As(lifted, &coreErr) {
		t.Fatal("expected core error in chain")
	}

	_, parseErr := numeral.Decode("ΙΧ'")
	lifted = FromNumeral(parseErr)
	if !IsCode(lifted, CodeNumeralParseFailed) {
		t.Fatalf("expected parse code, got %s", GetCode(lifted))
	}
	errors.As(lifted, &appErr)
	if appErr.Metadata["Reason"] != ReasonOrder || appErr.Metadata["Offset"] != "1" || appErr.Metadata["Input"] != "ΙΧ'" {
		t.Fatalf("unexpected parse metadata %v", appErr.Metadata)
	}

	_, caseErr := numeral.ParseCase("title")
	if !IsCode(FromNumeral(caseErr), CodeNumeralInvalidCase) {
		t.Fatalf("expected invalid case code")
	}

	plain := errors.New("plain")
	if FromNumeral(plain) != plain {
		t.Fatal("expected unrelated errors to pass through")
	}
	if FromNumeral(nil) != nil {
		t.Fatal("expected nil to stay nil")
	}
}

func TestParseReasons(t *testing.T) {
	tests := map[string]string{
		"":      ReasonEmpty,
		"Α":     ReasonMissingPrime,
		"Q'":    ReasonUnknownGlyph,
		"͵'":    ReasonDanglingMarker,
		"ΑΑ'":   ReasonOrder,
	}
	for input, want := range tests {
		_, err := numeral.Decode(input)
		var appErr *Error
		if !errors.As(FromNumeral(err), &appErr) {
			t.Fatalf("%q: expected domain error", input)
		}
		if got := appErr.Metadata["Reason"]; got != want {
			t.Fatalf("%q: expected reason %s, got %s", input, want, got)
		}
	}
}

func TestHandleErrorAttachesDetails(t *testing.T) {
	_, parseErr := numeral.Decode("not a numeral")
	err := HandleError(parseErr, "")

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeNumeralParseFailed) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info %+v", info)
	}
	if localized == nil || localized.GetLocale() != DefaultLocale {
		t.Fatalf("unexpected localized message %+v", localized)
	}
	if localized.GetMessage() != "not a numeral is not a Greek numeral: it must end with a prime mark (')" {
		t.Fatalf("unexpected localized text %q", localized.GetMessage())
	}
}

func TestHandleErrorPassesThroughStatus(t *testing.T) {
	original := status.Error(codes.Unavailable, "down")
	if got := HandleError(original, ""); got != original {
		t.Fatalf("expected status passthrough, got %v", got)
	}
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil")
	}
	st, _ := status.FromError(HandleError(errors.New("secret"), ""))
	if st.Code() != codes.Internal || strings.Contains(st.Message(), "secret") {
		t.Fatalf("expected generic internal error, got %v", st)
	}
}

func TestFromGRPCStatusRoundTrip(t *testing.T) {
	_, rangeErr := numeral.Encode(-3, numeral.Upper)
	wire := HandleError(rangeErr, "el-GR")

	back := FromGRPCStatus(wire)
	if !IsCode(back, CodeNumeralOutOfRange) {
		t.Fatalf("expected out of range code, got %s", GetCode(back))
	}
	var appErr *Error
	errors.As(back, &appErr)
	if appErr.Metadata["Value"] != "-3" {
		t.Fatalf("expected value metadata, got %v", appErr.Metadata)
	}

	msg, ok := LocalizedMessage(wire)
	if !ok || !strings.Contains(msg, "999.999") {
		t.Fatalf("expected greek grouping in localized message, got %q", msg)
	}

	foreign := status.Error(codes.NotFound, "missing")
	if FromGRPCStatus(foreign) != foreign {
		t.Fatal("expected foreign status to pass through")
	}
}

func TestLocalize(t *testing.T) {
	_, rangeErr := numeral.Encode(1_000_000, numeral.Upper)
	if got := Localize(rangeErr, "en-US"); got != "Number out of range (must be between 0 and 999,999): 1000000" {
		t.Fatalf("unexpected en-US message %q", got)
	}
	if got := Localize(rangeErr, "el"); !strings.HasPrefix(got, "Ο αριθμός είναι εκτός ορίων") {
		t.Fatalf("unexpected el message %q", got)
	}

	_, parseErr := numeral.Decode("ΙΧ'")
	if got := Localize(parseErr, ""); got != "ΙΧ' is not a Greek numeral: the letters are not in descending order" {
		t.Fatalf("unexpected parse message %q", got)
	}

	_, caseErr := numeral.ParseCase("title")
	if got := Localize(caseErr, "en-US"); got != "Unknown letter case title (expected upper or lower)" {
		t.Fatalf("unexpected case message %q", got)
	}

	if got := Localize(errors.New("flag provided but not defined: -x"), "en-US"); got != "flag provided but not defined: -x" {
		t.Fatalf("expected plain error text, got %q", got)
	}
	if got := Localize(New(Code("SOMETHING_ELSE"), "x"), "en-US"); got != "An unexpected error occurred" {
		t.Fatalf("expected unknown fallback, got %q", got)
	}
	if Localize(nil, "en-US") != "" {
		t.Fatal("expected empty message for nil")
	}
}
