package output

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned when a format name resolves to no formatter.
	ErrUnsupportedFormat = errors.New("unsupported report format")
	// ErrEmptyCollection is returned when a formatter needs at least one record.
	ErrEmptyCollection = errors.New("empty people collection")
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
	// ErrInconsistentSchema is matched by every *InconsistentSchemaError.
	ErrInconsistentSchema = errors.New("inconsistent record schema")
)

// MissingFieldError reports a record lacking a key a formatter requires.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: %s %q", e.Index, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// InconsistentSchemaError reports a record whose keys differ from the first record's.
type InconsistentSchemaError struct {
	Index int
	Want  []string
	Got   []string
}

func (e *InconsistentSchemaError) Error() string {
	return fmt.Sprintf("record %d: %s: want keys [%s], got [%s]",
		e.Index, ErrInconsistentSchema, strings.Join(e.Want, ","), strings.Join(e.Got, ","))
}

func (e *InconsistentSchemaError) Is(target error) bool { return target == ErrInconsistentSchema }
