package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/peoplefmt/internal/domain"
	pdecimal "github.com/rpgo/peoplefmt/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TitleCount is one line of the title breakdown.
type TitleCount struct {
	Title string
	Count int
	Share decimal.Decimal
}

// SummarizeTitles counts people per title, ordered by count (descending) then title.
func SummarizeTitles(people []domain.Record) ([]TitleCount, error) {
	if len(people) == 0 {
		return nil, ErrEmptyCollection
	}
	counts := make(map[string]int)
	for i, p := range people {
		title, err := requireField(i, p, domain.KeyTitle)
		if err != nil {
			return nil, err
		}
		counts[title]++
	}
	out := make([]TitleCount, 0, len(counts))
	for title, n := range counts {
		out = append(out, TitleCount{
			Title: title,
			Count: n,
			Share: pdecimal.NewShare(n, len(people)).Percent(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

// SummaryFormatter prints the title breakdown.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(people []domain.Record) ([]byte, error) {
	titles, err := SummarizeTitles(people)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TITLE BREAKDOWN")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "People: %d\n", len(people))
	fmt.Fprintln(&buf)
	for _, tc := range titles {
		fmt.Fprintf(&buf, "%s: %d (%s)\n", tc.Title, tc.Count, FormatPercentage(tc.Share))
	}
	return buf.Bytes(), nil
}
