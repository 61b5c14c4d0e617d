package csvutil

import (
	"encoding/csv"
	"io"
)

// Writer handles CSV emission with RFC 4180 field encoding.
type Writer struct {
	writer *csv.Writer
	out    io.Writer
}

// NewWriter creates a new CSV writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: csv.NewWriter(w),
		out:    w,
	}
}

// WriteHeader writes the CSV header row.
func (w *Writer) WriteHeader(headers []string) error {
	return w.writer.Write(headers)
}

// WriteRow writes a single CSV row.
//
// A row holding one empty field is written as a quoted empty cell ("").
// encoding/csv emits it as a bare blank line, which csv.Reader then skips
// on read-back, so the row would otherwise vanish from the file.
func (w *Writer) WriteRow(row []string) error {
	if len(row) == 1 && row[0] == "" {
		if err := w.Flush(); err != nil {
			return err
		}
		_, err := io.WriteString(w.out, "\"\"\n")
		return err
	}
	return w.writer.Write(row)
}

// WriteAll writes multiple rows at once and flushes.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.writer.Flush()
	return w.writer.Error()
}
