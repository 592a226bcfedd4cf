package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/peoplefmt/internal/domain"
)

// HTMLFormatter renders people as an HTML table followed by the display lines.
// Values are HTML-escaped by the template engine.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/people.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("people").Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(people []domain.Record) ([]byte, error) {
	if len(people) == 0 {
		return nil, ErrEmptyCollection
	}
	display, err := FormatForDisplay(people)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(people))
	for i, p := range people {
		rows[i] = p.Values()
	}
	data := struct {
		Header  []string
		Rows    [][]string
		Display []string
	}{people[0].Keys(), rows, display}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
