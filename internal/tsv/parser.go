// Package tsv parses the tab-separated listing snapshot into header-keyed records.
package tsv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"erap/internal/models"
)

// DefaultHeaderLine is the zero-based line holding column headers. Lines
// before it are front matter.
const DefaultHeaderLine = 3

// ErrMissingHeader is returned when the input ends before the header row.
var ErrMissingHeader = errors.New("input has no header row")

// Parser splits listing text into records.
type Parser struct {
	headerLine int
	headers    []string
}

// NewParser creates a parser that reads headers from the given zero-based line.
func NewParser(headerLine int) *Parser {
	return &Parser{headerLine: headerLine}
}

// Parse parses text with the default header line.
func Parse(text string) ([]models.RawRecord, error) {
	return NewParser(DefaultHeaderLine).Parse(text)
}

// Headers returns the header row from the last successful Parse.
func (p *Parser) Headers() []string {
	return p.headers
}

// Parse converts text into records in input order. Blank lines are skipped,
// quoting is not interpreted, and short rows leave trailing columns absent.
func (p *Parser) Parse(text string) ([]models.RawRecord, error) {
	lines := strings.Split(text, "\n")
	if len(lines) <= p.headerLine {
		return nil, fmt.Errorf("%w: got %d lines, header expected on line %d",
			ErrMissingHeader, len(lines), p.headerLine+1)
	}

	p.headers = strings.Split(trimCR(lines[p.headerLine]), "\t")

	var records []models.RawRecord

	for _, line := range lines[p.headerLine+1:] {
		line = trimCR(line)
		if line == "" {
			continue
		}

		records = append(records, makeRecord(p.headers, strings.Split(line, "\t")))
	}

	return records, nil
}

// makeRecord zips headers with cells positionally.
func makeRecord(headers, cells []string) models.RawRecord {
	rec := make(models.RawRecord, len(headers))
	for i, header := range headers {
		if i < len(cells) {
			rec[header] = cells[i]
		}
	}

	return rec
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// ReadFile reads a UTF-8 file, dropping a leading byte order mark.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}
