package supabase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by the unconfigured client for every call
var ErrNotConfigured = errors.New("supabase not configured")

// Error is an error reported by the Supabase REST API, e.g. a constraint
// violation (23505) or a non-single result (PGRST116)
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error %s: %s", e.Code, e.Message)
}

// toError turns an error from postgrest-go into *Error when it carries an API
// error, which the library formats as "(code) message". Anything else is a
// transport or protocol failure and is wrapped.
func toError(table string, err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, "(") {
		if end := strings.Index(msg, ") "); end > 0 {
			return &Error{Code: msg[1:end], Message: msg[end+2:]}
		}
	}
	return fmt.Errorf("error inserting into %s: %w", table, err)
}
