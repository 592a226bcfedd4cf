package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rpgo/peoplefmt/internal/domain"
	"gopkg.in/yaml.v3"
)

// peopleFile is the wrapped input layout: a `people:` key holding the records.
type peopleFile struct {
	People []domain.Record `yaml:"people"`
}

// InputParser handles parsing of people input files
type InputParser struct {
	logger *slog.Logger
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{logger: slog.Default()}
}

// WithLogger sets the logger used while loading input
func (ip *InputParser) WithLogger(l *slog.Logger) *InputParser {
	if l != nil {
		ip.logger = l
	}
	return ip
}

// LoadFromFile loads people from a YAML or JSON file and validates them
func (ip *InputParser) LoadFromFile(filename string) ([]domain.Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	people, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidatePeople(people); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	ip.logger.Debug("loaded people",
		slog.String("file", filename),
		slog.Int("records", len(people)))
	return people, nil
}

// Parse decodes people from YAML or JSON. The document is either a sequence of
// records or a mapping with a `people` key holding one.
func (ip *InputParser) Parse(data []byte) ([]domain.Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return []domain.Record{}, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var people []domain.Record
		if err := doc.Decode(&people); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return people, nil
	case yaml.MappingNode:
		var wrapped peopleFile
		if err := doc.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if wrapped.People == nil {
			return nil, fmt.Errorf("failed to parse YAML: line %d: expected a list of people or a 'people' key", doc.Line)
		}
		return wrapped.People, nil
	default:
		return nil, fmt.Errorf("failed to parse YAML: line %d: expected a list of people or a 'people' key", doc.Line)
	}
}

// ValidatePeople validates the loaded records
func (ip *InputParser) ValidatePeople(people []domain.Record) error {
	if len(people) == 0 {
		return fmt.Errorf("no people provided")
	}

	for i, p := range people {
		if err := ip.validatePerson(p); err != nil {
			return fmt.Errorf("person %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validatePerson validates a single record's required keys
func (ip *InputParser) validatePerson(p domain.Record) error {
	for _, key := range domain.PersonKeys() {
		if _, ok := p.Get(key); !ok {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

// SavePeople writes people to a YAML file, preserving key order
func SavePeople(people []domain.Record, filename string) error {
	b, err := yaml.Marshal(peopleFile{People: people})
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExamplePeople returns the sample records written by `peoplefmt init`
func CreateExamplePeople() []domain.Record {
	return []domain.Record{
		domain.NewPerson("Alfonsa", "Ruiz", "Senior Software Engineer"),
		domain.NewPerson("Sayid", "Khan", "Project Manager"),
	}
}
