package convert

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var jsonIndent = jsoniter.Config{
	EscapeHTML:    true,
	IndentionStep: 2,
}.Froze()

var (
	// ErrInvalidDelimiter is returned for a delimiter encoding/csv cannot split on.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrDuplicateColumn is returned when two header columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// Options controls how CSV input is read.
type Options struct {
	Delimiter rune
	// NoHeader treats the first line as data; rows are then rendered as lists.
	NoHeader bool
}

// DefaultOptions reads comma separated input with a header line.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Validate checks that the delimiter can be used by the CSV reader.
func (o Options) Validate() error {
	d := o.Delimiter
	if d == 0 || d == '"' || d == '\r' || d == '\n' || !utf8.ValidRune(d) || d == utf8.RuneError {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	return nil
}

// Table is parsed CSV input. Header is empty when the input has none.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV parses all of r. Every row must have as many fields as the first one.
func ReadCSV(r io.Reader, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	table := &Table{Rows: records}
	if opts.NoHeader || len(records) == 0 {
		return table, nil
	}

	seen := make(map[string]struct{}, len(records[0]))
	for _, name := range records[0] {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
	}

	table.Header = records[0]
	table.Rows = records[1:]
	return table, nil
}

// Render writes the table as a JSON or YAML list. With a header each row becomes
// an object whose keys keep the column order.
func (t *Table) Render(format OutputFormat) ([]byte, error) {
	switch format {
	case JSON:
		return t.renderJSON()
	case YAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(t.yamlNode()); err != nil {
			return nil, fmt.Errorf("failed to render yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to render yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}
}

func (t *Table) renderJSON() ([]byte, error) {
	stream := jsonIndent.BorrowStream(nil)
	defer jsonIndent.ReturnStream(stream)

	if len(t.Rows) == 0 {
		stream.WriteEmptyArray()
	} else {
		stream.WriteArrayStart()
		for i, values := range t.Rows {
			if i > 0 {
				stream.WriteMore()
			}
			if len(t.Header) == 0 {
				stream.WriteVal(values)
				continue
			}
			stream.WriteObjectStart()
			for j, name := range t.Header {
				if j > 0 {
					stream.WriteMore()
				}
				stream.WriteObjectField(name)
				stream.WriteString(values[j])
			}
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	if stream.Error != nil {
		return nil, fmt.Errorf("failed to render json: %w", stream.Error)
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (t *Table) yamlNode() *yaml.Node {
	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, values := range t.Rows {
		if len(t.Header) == 0 {
			row := &yaml.Node{Kind: yaml.SequenceNode}
			for _, value := range values {
				row.Content = append(row.Content, scalar(value))
			}
			list.Content = append(list.Content, row)
			continue
		}

		row := &yaml.Node{Kind: yaml.MappingNode}
		for i, name := range t.Header {
			row.Content = append(row.Content, scalar(name), scalar(values[i]))
		}
		list.Content = append(list.Content, row)
	}
	if len(list.Content) == 0 {
		list.Style = yaml.FlowStyle
	}
	return list
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
