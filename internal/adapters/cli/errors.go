package cli

import (
	"errors"

	"friendly/internal/domain"
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// errorMessage maps a domain error code to a user-facing message.
func errorMessage(code string) string {
	switch code {
	case "catalog_not_found":
		return "catalog not found"
	case "catalog_malformed":
		return "catalog file is not a valid message catalog"
	case "unsupported_format":
		return "unsupported format"
	case "locale_not_found":
		return "no catalog stored for this language"
	case "no_database":
		return "no database configured (set DATABASE_URL)"
	default:
		return "unexpected error"
	}
}

var exitCodes = map[string]int{
	"catalog_not_found":  3,
	"catalog_malformed":  4,
	"unsupported_format": 2,
	"locale_not_found":   3,
	"no_database":        2,
}

// asExitError turns a domain error into an ExitError with a stable code.
// Other errors are returned unchanged.
func asExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	code := domain.Code(err)
	if code == "" {
		return err
	}
	return &ExitError{
		Code:    exitCodes[code],
		Message: errorMessage(code) + ": " + err.Error(),
	}
}
