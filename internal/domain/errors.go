//go:generate stringer -type=Kind -linecomment
package domain

import (
	"errors"
	"fmt"
)

// Kind is a failure category of an assessment call
type Kind int

const (
	KindUnknown           Kind = iota // unknown
	KindMissingInput                  // missing_input
	KindNotConfigured                 // not_configured
	KindAudioUnavailable              // audio_unavailable
	KindVendorUnreachable             // vendor_unreachable
	KindVendorRejected                // vendor_rejected
	KindMalformedResponse             // malformed_response
)

// Error is a categorized assessment failure
type Error struct {
	Kind    Kind
	Msg     string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates error of the kind
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError creates error of the kind keeping the cause
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the category of err, KindUnknown if err is not categorized
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
