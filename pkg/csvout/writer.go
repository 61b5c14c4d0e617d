// Package csvout provides a CSV file output for tabular records whose column
// set is not known up front and can grow as new records arrive. The on-disk
// header always covers every key seen so far; when a record introduces a new
// key, the whole file is rewritten under the wider header with older rows
// padded by empty cells.
package csvout

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yourorg/go-tabular-kit/pkg/csvutil"
	"github.com/yourorg/go-tabular-kit/pkg/errors"
	"github.com/yourorg/go-tabular-kit/pkg/logging"
	"github.com/yourorg/go-tabular-kit/pkg/tabular"
	"github.com/yourorg/go-tabular-kit/pkg/utils"
)

// Writer serializes tabular records to one CSV file.
//
// A Writer owns its file handle exclusively; concurrent writers on the same
// path produce interleaved output and are unsupported. A header rewrite
// truncates the file in place, so a crash mid-rewrite can leave it
// header-only or with a partial row. Writing to a temp file and renaming it
// over the original would close that window, at the cost of changing the
// current failure-mode surface.
type Writer struct {
	file *os.File
	out  *csvutil.Writer
	path string

	fieldnames    []string
	fieldset      map[string]struct{}
	headerWritten bool

	warnedOnce      map[string]struct{}
	disableWarnings bool

	logger   logging.Logger
	rewrites int
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the logger warnings are emitted through.
func WithLogger(logger logging.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// DisableWarnings suppresses warning emission entirely. Intended for test
// harnesses; deduplication bookkeeping still runs.
func DisableWarnings() Option {
	return func(w *Writer) {
		w.disableWarnings = true
	}
}

// New opens path for reading and writing (create-or-truncate) and returns a
// Writer for it.
func New(path string, opts ...Option) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to open %s", path), err)
	}

	w := &Writer{
		file:       file,
		out:        csvutil.NewWriter(file),
		path:       path,
		fieldset:   make(map[string]struct{}),
		warnedOnce: make(map[string]struct{}),
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With(
		logging.NewField("writer_id", utils.GenerateWriterID()),
		logging.NewField("path", path),
	)

	return w, nil
}

// Record writes one tabular record as a CSV row.
//
// data must implement tabular.Record; anything else fails with
// UNSUPPORTED_RECORD_TYPE and writes nothing. The first record with keys
// fixes the header. Later records whose keys fit the header append one line.
// A record introducing unseen keys triggers a full rewrite under the wider
// header before its own line is appended. Every column written is reported
// back to the record via MarkRecorded.
//
// Values round-trip a rewrite byte-exact, with one exception: csv.Reader
// folds "\r\n" inside a quoted cell to "\n" during the read-back.
func (w *Writer) Record(data interface{}) error {
	rec, ok := data.(tabular.Record)
	if !ok {
		return errors.NewUnsupportedRecordTypeError(
			fmt.Sprintf("csvout accepts tabular.Record, got %T", data))
	}

	values := rec.PrimitiveMap()

	// Nothing to name columns after yet.
	if len(values) == 0 && !w.headerWritten {
		return nil
	}

	if !w.headerWritten {
		if err := w.writeHeader(values); err != nil {
			return err
		}
	}

	var added []string
	for k := range values {
		if _, ok := w.fieldset[k]; !ok {
			added = append(added, k)
		}
	}
	if len(added) > 0 {
		sort.Strings(added)
		if err := w.rewrite(added); err != nil {
			return err
		}
		w.warn(fmt.Sprintf("CSV header grew to %d columns (added %s); rewrote %s",
			len(w.fieldnames), strings.Join(added, ", "), w.path))
	}

	row := make([]string, len(w.fieldnames))
	for i, col := range w.fieldnames {
		row[i] = values[col]
	}
	if err := w.out.WriteRow(row); err != nil {
		return errors.NewIOError("failed to write CSV row", err)
	}
	if err := w.out.Flush(); err != nil {
		return errors.NewIOError("failed to flush CSV row", err)
	}

	for _, col := range w.fieldnames {
		rec.MarkRecorded(col)
	}

	return nil
}

// Warn surfaces a non-fatal advisory message through the writer's logger.
// Each distinct message is emitted at most once per writer lifetime;
// emission can be suppressed entirely with DisableWarnings. Warnings never
// affect file content.
func (w *Writer) Warn(msg string) {
	w.warn(msg)
}

// Rewrites returns how many header rewrites this writer has performed.
func (w *Writer) Rewrites() int {
	return w.rewrites
}

// Path returns the path of the CSV file.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered output and closes the file.
func (w *Writer) Close() error {
	if err := w.out.Flush(); err != nil {
		_ = w.file.Close()
		return errors.NewIOError("failed to flush CSV output", err)
	}
	if err := w.file.Close(); err != nil {
		return errors.NewIOError("failed to close CSV file", err)
	}
	return nil
}

// writeHeader fixes the column set from the first record's keys, in
// lexicographic order, and writes the header line.
func (w *Writer) writeHeader(values map[string]string) error {
	cols := make([]string, 0, len(values))
	for k := range values {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	if err := w.out.WriteHeader(cols); err != nil {
		return errors.NewIOError("failed to write CSV header", err)
	}

	w.fieldnames = cols
	for _, k := range cols {
		w.fieldset[k] = struct{}{}
	}
	w.headerWritten = true

	return nil
}

// rewrite widens the header by the added columns and rewrites the whole
// file: read every row back, truncate, re-emit the header, then re-emit the
// rows padded with empty cells for the columns they predate.
func (w *Writer) rewrite(added []string) error {
	if err := w.out.Flush(); err != nil {
		return errors.NewIOError("failed to flush before rewrite", err)
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return errors.NewIOError("failed to seek for rewrite", err)
	}

	parser := csvutil.NewParser(csvutil.ParserConfig{
		HasHeader:     true,
		Comma:         ',',
		SkipEmptyRows: false,
		Validators: []csvutil.RowValidator{
			csvutil.ExactColumnsValidator(len(w.fieldnames)),
		},
	})
	_, rows, err := parser.ParseToMaps(w.file)
	if err != nil {
		return errors.NewMalformedFileError(
			fmt.Sprintf("failed to read %s back for header growth", w.path), err)
	}

	for _, k := range added {
		w.fieldset[k] = struct{}{}
	}
	w.fieldnames = append(w.fieldnames, added...)

	if err := w.file.Truncate(0); err != nil {
		return errors.NewIOError("failed to truncate for rewrite", err)
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return errors.NewIOError("failed to seek after truncate", err)
	}

	if err := w.out.WriteHeader(w.fieldnames); err != nil {
		return errors.NewIOError("failed to rewrite CSV header", err)
	}
	padded := make([][]string, 0, len(rows))
	for _, m := range rows {
		row := make([]string, len(w.fieldnames))
		for i, col := range w.fieldnames {
			row[i] = m[col]
		}
		padded = append(padded, row)
	}
	if err := w.out.WriteAll(padded); err != nil {
		return errors.NewIOError("failed to rewrite CSV rows", err)
	}

	w.rewrites++
	return nil
}

// warn emits msg at most once per writer lifetime.
func (w *Writer) warn(msg string) {
	if _, seen := w.warnedOnce[msg]; seen {
		return
	}
	w.warnedOnce[msg] = struct{}{}
	if w.disableWarnings {
		return
	}
	w.logger.Warn(msg)
}
