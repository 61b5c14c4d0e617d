package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RowValidator validates a CSV row.
type RowValidator func(row []string, rowNum int) error

// ParserConfig configures CSV parsing behavior.
// Cell values are returned byte-exact; the parser never trims, so values
// written through Writer round-trip unchanged.
type ParserConfig struct {
	HasHeader     bool
	Comma         rune
	LazyQuotes    bool
	SkipEmptyRows bool
	Validators    []RowValidator
}

// DefaultParserConfig returns a default parser configuration.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		HasHeader:     true,
		Comma:         ',',
		SkipEmptyRows: true,
	}
}

// Parser handles CSV parsing with validation.
type Parser struct {
	config ParserConfig
	header []string
}

// NewParser creates a new CSV parser.
func NewParser(config ParserConfig) *Parser {
	return &Parser{
		config: config,
	}
}

// Parse parses CSV data from a reader and calls the handler for each row.
func (p *Parser) Parse(reader io.Reader, handler func(rowNum int, headers []string, row []string) error) error {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = p.config.Comma
	csvReader.LazyQuotes = p.config.LazyQuotes
	// Row width is checked by validators, not the reader, so a caller can
	// surface its own error for width mismatches.
	csvReader.FieldsPerRecord = -1

	rowNum := 0

	if p.config.HasHeader {
		header, err := csvReader.Read()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("CSV data is empty")
			}
			return fmt.Errorf("failed to read header: %w", err)
		}
		p.header = header
		rowNum++
	}

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row %d: %w", rowNum+1, err)
		}

		rowNum++

		if p.config.SkipEmptyRows && isEmptyRow(row) {
			continue
		}

		for _, validator := range p.config.Validators {
			if err := validator(row, rowNum); err != nil {
				return fmt.Errorf("validation failed for row %d: %w", rowNum, err)
			}
		}

		if err := handler(rowNum, p.header, row); err != nil {
			return fmt.Errorf("handler error for row %d: %w", rowNum, err)
		}
	}

	return nil
}

// ParseToMaps parses CSV data with a header and returns the header plus each
// data row as a column→value map. Rows narrower than the header leave the
// missing columns out of their map.
func (p *Parser) ParseToMaps(reader io.Reader) ([]string, []map[string]string, error) {
	var rows []map[string]string

	err := p.Parse(reader, func(rowNum int, headers []string, row []string) error {
		m := make(map[string]string, len(headers))
		for i, col := range headers {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		rows = append(rows, m)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return p.header, rows, nil
}

// ParseToSlice parses CSV data and returns all rows as a slice.
func (p *Parser) ParseToSlice(reader io.Reader) ([][]string, error) {
	var rows [][]string

	err := p.Parse(reader, func(rowNum int, headers []string, row []string) error {
		rows = append(rows, row)
		return nil
	})

	return rows, err
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Common validators

// NonEmptyRowValidator validates that no cell in a row is blank.
func NonEmptyRowValidator() RowValidator {
	return func(row []string, rowNum int) error {
		for i, cell := range row {
			if strings.TrimSpace(cell) == "" {
				return fmt.Errorf("empty cell at column %d", i+1)
			}
		}
		return nil
	}
}

// ExactColumnsValidator validates that a row has exactly N columns.
func ExactColumnsValidator(exactCols int) RowValidator {
	return func(row []string, rowNum int) error {
		if len(row) != exactCols {
			return fmt.Errorf("row has %d columns, expected exactly %d", len(row), exactCols)
		}
		return nil
	}
}
