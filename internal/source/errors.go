package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnreachable marks locations that could not be read at all.
	ErrUnreachable = errors.New("payload unreachable")
	// ErrStatus marks HTTP responses outside the 2xx range.
	ErrStatus = errors.New("unexpected response status")
	// ErrParse marks bodies that are not a JSON payload.
	ErrParse = errors.New("payload parse failure")
)

// wrap tags err with marker and the location/operation context, in the form
// "<marker>: <location>: <op>: <err>".
func wrap(marker error, location, operation string, err error) error {
	if marker == nil {
		marker = ErrUnreachable
	}
	parts := make([]string, 0, 2)
	if location = strings.TrimSpace(location); location != "" {
		parts = append(parts, location)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "source failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
