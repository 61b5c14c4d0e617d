package csvutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriter_SingleEmptyFieldRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	if err := w.WriteHeader([]string{"x"}); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := w.WriteAll([][]string{{""}, {"1"}, {""}}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	if got := buf.String(); got != "x\n\"\"\n1\n\"\"\n" {
		t.Errorf("Empty cells must be quoted, got %q", got)
	}

	parser := NewParser(ParserConfig{HasHeader: true, Comma: ','})
	_, rows, err := parser.ParseToMaps(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseToMaps failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows back, got %d: %v", len(rows), rows)
	}
	if rows[0]["x"] != "" || rows[1]["x"] != "1" || rows[2]["x"] != "" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	if err := w.WriteHeader([]string{"name", "note"}); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := w.WriteRow([]string{"John", `said "hi", twice`}); err != nil {
		t.Fatalf("WriteRow failed: %v", err)
	}
	if err := w.WriteAll([][]string{{"Jane", "multi\nline"}, {"Bob", ""}}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	parser := NewParser(ParserConfig{HasHeader: true, Comma: ','})
	header, rows, err := parser.ParseToMaps(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseToMaps failed: %v", err)
	}

	if len(header) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(header))
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0]["note"] != `said "hi", twice` {
		t.Errorf("Quoted value did not round-trip: '%s'", rows[0]["note"])
	}
	if rows[1]["note"] != "multi\nline" {
		t.Errorf("Multiline value did not round-trip: '%s'", rows[1]["note"])
	}
	if rows[2]["note"] != "" {
		t.Errorf("Empty value did not round-trip: '%s'", rows[2]["note"])
	}
}
