package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/peoplefmt/internal/domain"
)

// Options tunes formatter lookup.
type Options struct {
	// Strict enables schema validation on the CSV formatters.
	Strict bool
}

// Resolve returns the formatter for a format name with opts applied, or an error
// wrapping ErrUnsupportedFormat that lists the known names and aliases.
func Resolve(format string, opts Options) (Formatter, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	switch v := f.(type) {
	case CSVFormatter:
		v.Strict = opts.Strict
		return v, nil
	case QuotedCSVFormatter:
		v.Strict = opts.Strict
		return v, nil
	}
	return f, nil
}

// Render formats people and writes the result to w.
func Render(w io.Writer, people []domain.Record, format string, opts Options) error {
	f, err := Resolve(format, opts)
	if err != nil {
		return err
	}
	data, err := f.Format(people)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes people to a timestamped file in dir and returns its path.
func GenerateReport(people []domain.Record, format, dir string, opts Options) (string, error) {
	f, err := Resolve(format, opts)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, people, dir, Extension(format))
}
