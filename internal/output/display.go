package output

import (
	"bytes"

	"github.com/rpgo/peoplefmt/internal/domain"
)

// FormatForDisplay renders each person as "{given_name} {family_name}: {title}".
// The result has the same length and order as people; an empty input yields an
// empty slice. A record missing any of the three keys fails the whole call.
func FormatForDisplay(people []domain.Record) ([]string, error) {
	lines := make([]string, 0, len(people))
	for i, p := range people {
		given, err := requireField(i, p, domain.KeyGivenName)
		if err != nil {
			return nil, err
		}
		family, err := requireField(i, p, domain.KeyFamilyName)
		if err != nil {
			return nil, err
		}
		title, err := requireField(i, p, domain.KeyTitle)
		if err != nil {
			return nil, err
		}
		lines = append(lines, given+" "+family+": "+title)
	}
	return lines, nil
}

func requireField(index int, r domain.Record, key string) (string, error) {
	v, ok := r.Get(key)
	if !ok {
		return "", &MissingFieldError{Index: index, Field: key}
	}
	return v, nil
}

// DisplayFormatter prints one display line per person.
type DisplayFormatter struct{}

func (d DisplayFormatter) Name() string { return "console" }

func (d DisplayFormatter) Format(people []domain.Record) ([]byte, error) {
	lines, err := FormatForDisplay(people)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
