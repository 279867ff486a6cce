package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyFile is returned when the upload has no content at all.
	ErrEmptyFile = errors.New("file is empty")
	// ErrNoRows is returned when the upload has headers but no data rows.
	ErrNoRows = errors.New("no data rows found")
	// ErrUnsupportedFormat is returned for file extensions the reader does
	// not understand.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Table is a raw tabular upload: one header row plus data rows, all cells
// as strings exactly as the bank exported them.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Cell returns the row's cell under the given column index, or "" when the
// row is shorter than the header. Bank exports are frequently ragged.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// ReadTable parses an uploaded statement into a Table, dispatching on the
// file extension. CSV-like files go through delimiter detection; .xlsx
// files are read from the first sheet.
func ReadTable(r io.Reader, filename string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv", ".txt", ".tsv", "":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV parses a delimited text upload. The delimiter is detected from
// the header line among ',', ';' and tab.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return tableFromRecords(records)
}

// ReadXLSX reads the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (*Table, error) {
	// Skip leading blank lines before the header.
	for len(records) > 0 && blankRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRow(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

func blankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// detectDelimiter picks the delimiter that occurs most often in the header
// line, defaulting to comma.
func detectDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx != -1 {
		line = data[:idx]
	}

	best, bestCount := ',', 0
	for _, cand := range []byte{',', ';', '\t'} {
		if n := bytes.Count(line, []byte{cand}); n > bestCount {
			best, bestCount = rune(cand), n
		}
	}
	return best
}
