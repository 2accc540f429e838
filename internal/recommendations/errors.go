package recommendations

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedProfile = errors.New("malformed request")

// ValidationError reports the need-profile keys missing from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("malformed request: missing keys %s", strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformedProfile
}
