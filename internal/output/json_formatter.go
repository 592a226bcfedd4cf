package output

import (
	"encoding/json"

	"github.com/rpgo/peoplefmt/internal/domain"
)

// JSONFormatter serializes people as a pretty-printed JSON array, keeping each
// record's key order.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(people []domain.Record) ([]byte, error) {
	if people == nil {
		people = []domain.Record{}
	}
	return json.MarshalIndent(people, "", "  ")
}
