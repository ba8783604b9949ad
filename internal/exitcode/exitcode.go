package exitcode

import (
	"os"
	"strings"

	"github.com/felixgeelhaar/warfront/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// ValidationError indicates rejected input (empty roster, duplicate slot, etc.)
	ValidationError = 4

	// NetworkError indicates the Warfront API could not be reached
	NetworkError = 5

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code. Coded errors are
// classified by their code family, everything else by message heuristics.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if code := errors.CodeOf(err); code != "" {
		switch {
		case strings.HasPrefix(string(code), "AUTH-"):
			return AuthError
		case strings.HasPrefix(string(code), "ARMY-"), strings.HasPrefix(string(code), "BATTLE-"):
			return ValidationError
		case code == errors.ErrCodeAPIRequest:
			return NetworkError
		}
		return GeneralError
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return NetworkError
	}
	if strings.Contains(msg, "required flag") || strings.Contains(msg, "unknown command") {
		return UsageError
	}
	return GeneralError
}
