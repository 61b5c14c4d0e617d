package csvutil

import (
	"strings"
	"testing"
)

func TestParser_Parse(t *testing.T) {
	csvData := `name,age,city
John,30,New York
Jane,25,San Francisco
Bob,35,Chicago`

	parser := NewParser(DefaultParserConfig())
	reader := strings.NewReader(csvData)

	var rows [][]string
	err := parser.Parse(reader, func(rowNum int, headers []string, row []string) error {
		if rowNum == 2 {
			if len(headers) != 3 {
				t.Errorf("Expected 3 headers, got %d", len(headers))
			}
		}
		rows = append(rows, row)
		return nil
	})

	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(rows))
	}

	if rows[0][0] != "John" {
		t.Errorf("Expected first row first column to be 'John', got '%s'", rows[0][0])
	}
}

func TestParser_ParseToMaps(t *testing.T) {
	csvData := `x,y
1,
2,5`

	parser := NewParser(DefaultParserConfig())
	header, rows, err := parser.ParseToMaps(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseToMaps failed: %v", err)
	}

	if len(header) != 2 || header[0] != "x" || header[1] != "y" {
		t.Errorf("Unexpected header: %v", header)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["x"] != "1" || rows[0]["y"] != "" {
		t.Errorf("Unexpected first row: %v", rows[0])
	}
	if rows[1]["x"] != "2" || rows[1]["y"] != "5" {
		t.Errorf("Unexpected second row: %v", rows[1])
	}
}

func TestParser_ValuesNotTrimmed(t *testing.T) {
	csvData := "k\n\" padded \""

	parser := NewParser(DefaultParserConfig())
	_, rows, err := parser.ParseToMaps(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseToMaps failed: %v", err)
	}

	if rows[0]["k"] != " padded " {
		t.Errorf("Expected cell to round-trip byte-exact, got '%s'", rows[0]["k"])
	}
}

func TestParser_ParseToSlice(t *testing.T) {
	csvData := `name,age
John,30
Jane,25`

	parser := NewParser(DefaultParserConfig())
	reader := strings.NewReader(csvData)

	rows, err := parser.ParseToSlice(reader)
	if err != nil {
		t.Fatalf("ParseToSlice failed: %v", err)
	}

	if len(rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(rows))
	}
}

func TestParser_NonEmptyValidation(t *testing.T) {
	csvData := `name,age
John,30
,25`

	config := DefaultParserConfig()
	config.Validators = []RowValidator{
		NonEmptyRowValidator(),
	}

	parser := NewParser(config)
	reader := strings.NewReader(csvData)

	err := parser.Parse(reader, func(rowNum int, headers []string, row []string) error {
		return nil
	})

	if err == nil {
		t.Error("Expected validation error for empty cell")
	}
}

func TestParser_ExactColumns(t *testing.T) {
	csvData := `name,age,city
John,30`

	config := DefaultParserConfig()
	config.Validators = []RowValidator{
		ExactColumnsValidator(3),
	}

	parser := NewParser(config)
	reader := strings.NewReader(csvData)

	err := parser.Parse(reader, func(rowNum int, headers []string, row []string) error {
		return nil
	})

	if err == nil {
		t.Error("Expected validation error for column count mismatch")
	}
}

func TestParser_EmptyData(t *testing.T) {
	parser := NewParser(DefaultParserConfig())
	reader := strings.NewReader("")

	err := parser.Parse(reader, func(rowNum int, headers []string, row []string) error {
		return nil
	})

	if err == nil {
		t.Error("Expected error for empty data")
	}
}
