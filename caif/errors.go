package caif

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindAddress    Kind = "Address"
	KindOption     Kind = "Option"
	KindValidation Kind = "Validation"
	KindText       Kind = "Text"
	KindInternal   Kind = "Internal"
)

// Stable rule IDs. One ID per violated invariant; the set is closed and
// versioned by protocol revision.
const (
	// Address codec.
	RuleUnknownProtocolType = "CAIF-ADDR-001"
	RuleLengthMismatch      = "CAIF-ADDR-002"
	RuleFieldTooLong        = "CAIF-ADDR-003"
	RuleBadAddressFamily    = "CAIF-ADDR-004"
	RuleAmbiguousDatagram   = "CAIF-ADDR-005"
	RuleEmbeddedNUL         = "CAIF-ADDR-006"

	// Socket options.
	RuleInvalidLinkSelector = "CAIF-OPT-001"
	RuleParamTooLong        = "CAIF-OPT-002"
	RuleUnknownOption       = "CAIF-OPT-003"

	// Strict validation.
	RuleATTypeNotPlain     = "CAIF-VAL-101"
	RulePriorityOutOfRange = "CAIF-VAL-102"

	// Textual address form.
	RuleTextSyntax = "CAIF-TEXT-001"
	RuleTextNumber = "CAIF-TEXT-002"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., CAIF-ADDR-002, CAIF-OPT-001) that
// names the violated invariant or validation rule.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
