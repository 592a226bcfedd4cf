package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rpgo/peoplefmt/internal/domain"
)

// FormatForCSV renders people as comma-separated text. The header is the first
// record's keys; each row holds a record's values in that record's own key order.
// Lines are joined by "\n" with no trailing newline.
//
// Values are written verbatim: commas, quotes and newlines inside a value are not
// escaped. Records are assumed to share the first record's schema; use
// ValidateSchema (or CSVFormatter.Strict) to check that first.
func FormatForCSV(people []domain.Record) (string, error) {
	if len(people) == 0 {
		return "", ErrEmptyCollection
	}
	lines := make([]string, 0, len(people)+1)
	lines = append(lines, strings.Join(people[0].Keys(), ","))
	for _, p := range people {
		lines = append(lines, strings.Join(p.Values(), ","))
	}
	return strings.Join(lines, "\n"), nil
}

// ValidateSchema checks that every record has the first record's keys in the same order.
func ValidateSchema(people []domain.Record) error {
	if len(people) == 0 {
		return ErrEmptyCollection
	}
	for i := 1; i < len(people); i++ {
		if !domain.SameSchema(people[0], people[i]) {
			return &InconsistentSchemaError{Index: i, Want: people[0].Keys(), Got: people[i].Keys()}
		}
	}
	return nil
}

// CSVFormatter implements the verbatim CSV output.
type CSVFormatter struct {
	// Strict rejects collections whose records disagree on keys or key order.
	Strict bool
}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(people []domain.Record) ([]byte, error) {
	if c.Strict {
		if err := ValidateSchema(people); err != nil {
			return nil, err
		}
	}
	s, err := FormatForCSV(people)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// QuotedCSVFormatter writes RFC 4180 CSV, quoting values that need it.
type QuotedCSVFormatter struct {
	Strict bool
}

func (c QuotedCSVFormatter) Name() string { return "csv-quoted" }

func (c QuotedCSVFormatter) Format(people []domain.Record) ([]byte, error) {
	if len(people) == 0 {
		return nil, ErrEmptyCollection
	}
	if c.Strict {
		if err := ValidateSchema(people); err != nil {
			return nil, err
		}
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(people[0].Keys()); err != nil {
		return nil, err
	}
	for _, p := range people {
		if err := w.Write(p.Values()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
