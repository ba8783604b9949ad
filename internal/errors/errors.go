package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthFieldRequired    ErrorCode = "AUTH-001"
	ErrCodeAuthPasswordShort    ErrorCode = "AUTH-002"
	ErrCodeAuthPasswordMismatch ErrorCode = "AUTH-003"
	ErrCodeAuthEmailTaken       ErrorCode = "AUTH-004"
	ErrCodeAuthUserNotFound     ErrorCode = "AUTH-005"
	ErrCodeAuthBadPassword      ErrorCode = "AUTH-006"
	ErrCodeAuthInFlight         ErrorCode = "AUTH-007"
	ErrCodeAuthNotLoggedIn      ErrorCode = "AUTH-008"

	// Army errors (ARMY-001 to ARMY-099)
	ErrCodeArmyNoCommander ErrorCode = "ARMY-001"
	ErrCodeArmyEmptyRoster ErrorCode = "ARMY-002"
	ErrCodeArmyUnknownUnit ErrorCode = "ARMY-003"
	ErrCodeArmyInFlight    ErrorCode = "ARMY-004"

	// Battle errors (BATTLE-001 to BATTLE-099)
	ErrCodeBattleSlotEmpty ErrorCode = "BATTLE-001"
	ErrCodeBattleSameArmy  ErrorCode = "BATTLE-002"
	ErrCodeBattleInFlight  ErrorCode = "BATTLE-003"

	// Remote API errors (API-001 to API-099)
	ErrCodeAPIRequest      ErrorCode = "API-001"
	ErrCodeAPIStatus       ErrorCode = "API-002"
	ErrCodeAPIDecode       ErrorCode = "API-003"
	ErrCodeAPIUnauthorized ErrorCode = "API-004"

	// Credential store errors (STORE-001 to STORE-099)
	ErrCodeStoreRead  ErrorCode = "STORE-001"
	ErrCodeStoreWrite ErrorCode = "STORE-002"
)

// WarfrontError represents an enhanced error with code, suggestions, and cause
type WarfrontError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *WarfrontError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *WarfrontError) Unwrap() error {
	return e.Cause
}

// New creates a new WarfrontError
func New(code ErrorCode, message string) *WarfrontError {
	return &WarfrontError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new WarfrontError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *WarfrontError {
	return &WarfrontError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *WarfrontError) WithSuggestion(suggestion string) *WarfrontError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *WarfrontError) WithSuggestions(suggestions ...string) *WarfrontError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not a
// WarfrontError.
func CodeOf(err error) ErrorCode {
	if wfErr, ok := err.(*WarfrontError); ok {
		return wfErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Common error constructors for frequently used errors

// NewEmailTakenError creates a duplicate-email signup error
func NewEmailTakenError(email string) *WarfrontError {
	return New(ErrCodeAuthEmailTaken, fmt.Sprintf("email already registered: %s", email)).
		WithSuggestion("Use 'warfront auth login' if this account is yours").
		WithSuggestion("Sign up with a different email address")
}

// NewUserNotFoundError creates a login error for an unknown account
func NewUserNotFoundError(email string) *WarfrontError {
	return New(ErrCodeAuthUserNotFound, fmt.Sprintf("no account found for: %s", email)).
		WithSuggestion("Check the email address for typos").
		WithSuggestion("Use 'warfront auth signup' to create an account")
}

// NewBadPasswordError creates a login error for a wrong password
func NewBadPasswordError() *WarfrontError {
	return New(ErrCodeAuthBadPassword, "incorrect password").
		WithSuggestion("Check the password and try again")
}

// NewNotLoggedInError creates an error for operations that require a session
func NewNotLoggedInError() *WarfrontError {
	return New(ErrCodeAuthNotLoggedIn, "this operation requires a logged-in commander").
		WithSuggestion("Run 'warfront auth login' to authenticate").
		WithSuggestion("Run 'warfront auth signup' to create an account")
}

// NewAPIStatusError creates a generic remote failure error
func NewAPIStatusError(status int, detail string) *WarfrontError {
	msg := fmt.Sprintf("request failed with status %d", status)
	if detail != "" {
		msg += fmt.Sprintf(": %s", detail)
	}
	return New(ErrCodeAPIStatus, msg).
		WithSuggestion("Try again in a moment").
		WithSuggestion("Check WARFRONT_API_URL if the problem persists")
}
