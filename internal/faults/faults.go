// Package faults defines the error kinds shared across the batch pipeline.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks a missing or invalid input directory.
	ErrNotFound = errors.New("not found")
	// ErrEncoding marks a non-zero encoder exit. The wrapped message carries
	// the process stderr verbatim.
	ErrEncoding = errors.New("encoding failed")
	// ErrIO marks size-measurement and other filesystem failures.
	ErrIO = errors.New("io failure")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind names the error category for reporting and history rows.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEncoding):
		return "encoding"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "unknown"
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
