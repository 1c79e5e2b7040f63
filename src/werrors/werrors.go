// Package werrors defines the error taxonomy surfaced at the async43
// boundary. Errors returned by the lookup path (resolve, transport,
// whois, validate) wrap a *Error so callers can branch with
// errors.Is/errors.As instead of string-matching messages; config.Load
// returns viper's file-read error unwrapped.
package werrors

import (
	"errors"
	"fmt"
)

// Kind identifies which leaf of the WhoisError hierarchy an Error belongs to.
type Kind string

const (
	KindNetwork         Kind = "network"
	KindNonRoutableIP   Kind = "non_routable_ip"
	KindDomainNotFound  Kind = "domain_not_found"
	KindInternal        Kind = "internal"
	KindPolicyRestrict  Kind = "policy_restricted"
	KindQuotaExceeded   Kind = "quota_exceeded"
	KindUnknownDate     Kind = "unknown_date_format"
	KindCommandFailed   Kind = "command_failed"
	KindParseFailed     Kind = "parse_failed"
	KindServerNotFound  Kind = "server_not_found"
)

// Error is the base type for every error this module returns. It mirrors
// async43.exceptions.WhoisError and its subclasses, collapsed into one
// Go type discriminated by Kind rather than a class hierarchy.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, letting
// callers do errors.Is(err, werrors.Network("", nil)) style checks, or more
// commonly errors.Is(err, werrors.ErrDomainNotFound) against the
// exported sentinels below.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels usable with errors.Is when only the Kind matters.
var (
	ErrNetwork        = &Error{Kind: KindNetwork}
	ErrNonRoutableIP  = &Error{Kind: KindNonRoutableIP}
	ErrDomainNotFound = &Error{Kind: KindDomainNotFound}
	ErrInternal       = &Error{Kind: KindInternal}
	ErrPolicyRestrict = &Error{Kind: KindPolicyRestrict}
	ErrQuotaExceeded  = &Error{Kind: KindQuotaExceeded}
	ErrUnknownDate    = &Error{Kind: KindUnknownDate}
	ErrCommandFailed  = &Error{Kind: KindCommandFailed}
	ErrParseFailed    = &Error{Kind: KindParseFailed}
	ErrServerNotFound = &Error{Kind: KindServerNotFound}
)

func Network(msg string, cause error) *Error        { return New(KindNetwork, msg, cause) }
func NonRoutableIP(msg string) *Error                { return New(KindNonRoutableIP, msg, nil) }
func DomainNotFound(msg string) *Error               { return New(KindDomainNotFound, msg, nil) }
func Internal(msg string) *Error                     { return New(KindInternal, msg, nil) }
func PolicyRestricted(msg string) *Error             { return New(KindPolicyRestrict, msg, nil) }
func QuotaExceeded(msg string) *Error                { return New(KindQuotaExceeded, msg, nil) }
func UnknownDateFormat(msg string) *Error            { return New(KindUnknownDate, msg, nil) }
func CommandFailed(msg string, cause error) *Error   { return New(KindCommandFailed, msg, cause) }
func ParseFailed(msg string, cause error) *Error     { return New(KindParseFailed, msg, cause) }
func ServerNotFound(msg string) *Error               { return New(KindServerNotFound, msg, nil) }
