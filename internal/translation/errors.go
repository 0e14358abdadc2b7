package translation

import (
	"errors"
	"fmt"
	"strings"
)

// Failure classes. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	ErrTransport            = errors.New("transport failure")
	ErrProviderRejected     = errors.New("provider rejected request")
	ErrUnmappableLanguage   = errors.New("language not supported by provider")
	ErrUndecodableLanguage  = errors.New("provider returned unknown language code")
	ErrInputTooLarge        = errors.New("input exceeds provider limit")
	ErrEmptyResult          = errors.New("provider returned no translation")
	ErrSegmentMismatch      = errors.New("batch segment count mismatch")
	ErrUnrecognizedProvider = errors.New("unrecognized provider")
	ErrMissingCredentials   = errors.New("missing provider credentials")
)

// Error carries diagnostics for one failed operation.
type Error struct {
	Class    error
	Provider Kind
	// Code and Message are the provider's own error code and remediation text
	// for ErrProviderRejected, or the offending wire code for
	// ErrUndecodableLanguage.
	Code    string
	Message string
	// Status is the HTTP status for ErrTransport when a response arrived.
	Status int
	// Size and Limit are set for ErrInputTooLarge.
	Size  int
	Limit int
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Provider.IsValid() {
		b.WriteString(e.Provider.String())
		b.WriteString(": ")
	}
	if e.Class != nil {
		b.WriteString(e.Class.Error())
	} else {
		b.WriteString("translation failed")
	}
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Limit != 0 {
		fmt.Fprintf(&b, " (%d > %d bytes)", e.Size, e.Limit)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, ": code %s", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Class != nil {
		errs = append(errs, e.Class)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ClassOf returns the failure class of err, or nil when err did not come
// from this package.
func ClassOf(err error) error {
	var te *Error
	if errors.As(err, &te) {
		return te.Class
	}
	for _, class := range []error{
		ErrTransport,
		ErrProviderRejected,
		ErrUnmappableLanguage,
		ErrUndecodableLanguage,
		ErrInputTooLarge,
		ErrEmptyResult,
		ErrSegmentMismatch,
		ErrUnrecognizedProvider,
		ErrMissingCredentials,
	} {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}

func transportError(kind Kind, err error) *Error {
	return &Error{Class: ErrTransport, Provider: kind, Err: err}
}

func rejectedError(kind Kind, code, message string) *Error {
	return &Error{Class: ErrProviderRejected, Provider: kind, Code: code, Message: message}
}

func emptyResultError(kind Kind, detail string) *Error {
	return &Error{Class: ErrEmptyResult, Provider: kind, Message: detail}
}

func segmentMismatchError(kind Kind, want, got int) *Error {
	return &Error{
		Class:    ErrSegmentMismatch,
		Provider: kind,
		Message:  fmt.Sprintf("sent %d segments, received %d", want, got),
	}
}
