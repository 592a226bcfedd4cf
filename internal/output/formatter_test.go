package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/peoplefmt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examplePeople() []domain.Record {
	return []domain.Record{
		domain.NewPerson("Alfonsa", "Ruiz", "Senior Software Engineer"),
		domain.NewPerson("Sayid", "Khan", "Project Manager"),
	}
}

func TestFormatForDisplay(t *testing.T) {
	got, err := FormatForDisplay(examplePeople())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Alfonsa Ruiz: Senior Software Engineer",
		"Sayid Khan: Project Manager",
	}, got)
}

func TestFormatForDisplay_Empty(t *testing.T) {
	for _, in := range [][]domain.Record{nil, {}} {
		got, err := FormatForDisplay(in)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestFormatForDisplay_PreservesLengthAndOrder(t *testing.T) {
	people := []domain.Record{
		domain.NewPerson("C", "Three", "t3"),
		domain.NewPerson("A", "One", "t1"),
		domain.NewPerson("B", "Two", "t2"),
	}
	got, err := FormatForDisplay(people)
	require.NoError(t, err)
	require.Len(t, got, len(people))
	assert.Equal(t, "C Three: t3", got[0])
	assert.Equal(t, "A One: t1", got[1])
	assert.Equal(t, "B Two: t2", got[2])
}

func TestFormatForDisplay_IgnoresKeyOrderAndExtraKeys(t *testing.T) {
	p := domain.NewRecord(
		domain.Field{Key: "email", Value: "sk@example.com"},
		domain.Field{Key: domain.KeyTitle, Value: "Project Manager"},
		domain.Field{Key: domain.KeyFamilyName, Value: "Khan"},
		domain.Field{Key: domain.KeyGivenName, Value: "Sayid"},
	)
	got, err := FormatForDisplay([]domain.Record{p})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sayid Khan: Project Manager"}, got)
}

func TestFormatForDisplay_MissingField(t *testing.T) {
	people := []domain.Record{
		domain.NewPerson("Alfonsa", "Ruiz", "Senior Software Engineer"),
		domain.NewRecord(
			domain.Field{Key: domain.KeyGivenName, Value: "Sayid"},
			domain.Field{Key: domain.KeyTitle, Value: "Project Manager"},
		),
	}

	got, err := FormatForDisplay(people)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))

	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, 1, mf.Index)
	assert.Equal(t, domain.KeyFamilyName, mf.Field)
	assert.Contains(t, err.Error(), `"family_name"`)
}

func TestFormatForCSV(t *testing.T) {
	got, err := FormatForCSV(examplePeople())
	require.NoError(t, err)
	assert.Equal(t,
		"given_name,family_name,title\n"+
			"Alfonsa,Ruiz,Senior Software Engineer\n"+
			"Sayid,Khan,Project Manager",
		got)
}

func TestFormatForCSV_Golden(t *testing.T) {
	got, err := FormatForCSV(examplePeople())
	require.NoError(t, err)

	goldenPath := filepath.Join("testdata", "people_csv.golden")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0644))
	}
	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(data), got)
}

func TestFormatForCSV_SingleRecord(t *testing.T) {
	got, err := FormatForCSV([]domain.Record{domain.NewPerson("Sayid", "Khan", "Project Manager")})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "given_name,family_name,title", lines[0])
	assert.Equal(t, "Sayid,Khan,Project Manager", lines[1])
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestFormatForCSV_Empty(t *testing.T) {
	for _, in := range [][]domain.Record{nil, {}} {
		got, err := FormatForCSV(in)
		assert.Empty(t, got)
		assert.ErrorIs(t, err, ErrEmptyCollection)
	}
}

func TestFormatForCSV_ValuesVerbatim(t *testing.T) {
	people := []domain.Record{domain.NewPerson("Ann", "Lee, Jr.", `Says "hi"`)}
	got, err := FormatForCSV(people)
	require.NoError(t, err)
	assert.Equal(t, "given_name,family_name,title\nAnn,Lee, Jr.,Says \"hi\"", got)
}

func TestFormatForCSV_RowsFollowOwnKeyOrder(t *testing.T) {
	// Mismatched key order is not detected here; the row follows its own record.
	people := []domain.Record{
		domain.NewPerson("Alfonsa", "Ruiz", "Senior Software Engineer"),
		domain.NewRecord(
			domain.Field{Key: domain.KeyTitle, Value: "Project Manager"},
			domain.Field{Key: domain.KeyGivenName, Value: "Sayid"},
			domain.Field{Key: domain.KeyFamilyName, Value: "Khan"},
		),
	}
	got, err := FormatForCSV(people)
	require.NoError(t, err)
	assert.Equal(t, "given_name,family_name,title\nAlfonsa,Ruiz,Senior Software Engineer\nProject Manager,Sayid,Khan", got)
}

func TestFormattingIsDeterministic(t *testing.T) {
	people := examplePeople()

	d1, err := FormatForDisplay(people)
	require.NoError(t, err)
	d2, err := FormatForDisplay(people)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	c1, err := FormatForCSV(people)
	require.NoError(t, err)
	c2, err := FormatForCSV(people)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)

	// inputs are untouched
	assert.Equal(t, examplePeople(), people)
}

func TestValidateSchema(t *testing.T) {
	require.NoError(t, ValidateSchema(examplePeople()))
	assert.ErrorIs(t, ValidateSchema(nil), ErrEmptyCollection)

	people := append(examplePeople(), domain.NewRecord(
		domain.Field{Key: domain.KeyGivenName, Value: "Mo"},
		domain.Field{Key: domain.KeyTitle, Value: "Intern"},
	))
	err := ValidateSchema(people)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentSchema)

	var se *InconsistentSchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Index)
	assert.Equal(t, domain.PersonKeys(), se.Want)
	assert.Equal(t, []string{domain.KeyGivenName, domain.KeyTitle}, se.Got)
}

func TestCSVFormatter_Strict(t *testing.T) {
	people := append(examplePeople(), domain.NewRecord(domain.Field{Key: "x", Value: "y"}))

	out, err := CSVFormatter{}.Format(people)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\ny"))

	_, err = CSVFormatter{Strict: true}.Format(people)
	assert.ErrorIs(t, err, ErrInconsistentSchema)
}

func TestQuotedCSVFormatter(t *testing.T) {
	people := []domain.Record{domain.NewPerson("Ann", "Lee, Jr.", `Says "hi"`)}
	out, err := QuotedCSVFormatter{}.Format(people)
	require.NoError(t, err)
	assert.Equal(t, "given_name,family_name,title\nAnn,\"Lee, Jr.\",\"Says \"\"hi\"\"\"\n", string(out))

	_, err = QuotedCSVFormatter{}.Format(nil)
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestDisplayFormatter(t *testing.T) {
	out, err := DisplayFormatter{}.Format(examplePeople())
	require.NoError(t, err)
	assert.Equal(t, "Alfonsa Ruiz: Senior Software Engineer\nSayid Khan: Project Manager\n", string(out))

	out, err = DisplayFormatter{}.Format(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(examplePeople()[:1])
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"given_name\": \"Alfonsa\",\n    \"family_name\": \"Ruiz\",\n    \"title\": \"Senior Software Engineer\"\n  }\n]", string(out))

	out, err = JSONFormatter{}.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"display":     "console",
		"TEXT":        "console",
		" excel ":     "xlsx",
		"csv-rfc4180": "csv-quoted",
		"json-pretty": "json",
		"titles":      "summary",
		"html-report": "html",
		"csv":         "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name(), in)
	}
	assert.Nil(t, GetFormatterByName("definitely-not-a-format"))
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "csv-quoted", "html", "json", "summary", "xlsx"}, AvailableFormatterNames())
	assert.Equal(t, []string{"csv-rfc4180", "display", "excel", "html-report", "json-pretty", "text", "titles"}, AvailableFormatAliases())
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "txt", Extension("display"))
	assert.Equal(t, "csv", Extension("csv-quoted"))
	assert.Equal(t, "xlsx", Extension("excel"))
	assert.Equal(t, "json", Extension("json"))
	assert.Equal(t, "txt", Extension("summary"))
	assert.Equal(t, "html", Extension("html-report"))
	assert.Equal(t, "out", Extension("nope"))
}

func TestWriteFormatted(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	defer func() { now = orig }()

	dir := filepath.Join(t.TempDir(), "nested")
	path, err := WriteFormatted(CSVFormatter{}, examplePeople(), dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "people_20250304_050607.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "given_name,family_name,title\n"))
}

func TestWriteFormatted_FormatErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFormatted(CSVFormatter{}, nil, dir, "csv")
	assert.ErrorIs(t, err, ErrEmptyCollection)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFormatterFunc(t *testing.T) {
	ff := FormatterFunc{ID: "count", F: func(p []domain.Record) ([]byte, error) {
		return []byte{byte('0' + len(p))}, nil
	}}
	out, err := ff.Format(examplePeople())
	require.NoError(t, err)
	assert.Equal(t, "2", string(out))
	assert.Equal(t, "count", ff.Name())
}
