// Package validator checks the shape of a listing snapshot before it is normalized.
package validator

import (
	"fmt"
	"strings"

	"erap/internal/models"
)

// Result contains header check results. Missing columns are warnings only:
// the normalizer treats their cells as absent. Aliases maps a header that
// differs from a required column only in whitespace or case to that column.
type Result struct {
	Aliases    map[string]string
	Missing    []string
	Duplicates []string
	Warnings   []string
	Columns    int
}

// OK reports whether the header carried every expected column exactly once.
func (r *Result) OK() bool {
	return len(r.Warnings) == 0
}

// CheckHeader compares headers against the columns the normalizer reads.
func CheckHeader(headers []string) *Result {
	return CheckColumns(headers, models.RequiredColumns)
}

// CheckColumns reports required columns missing from headers and any header
// that appears more than once.
func CheckColumns(headers, required []string) *Result {
	result := &Result{
		Missing:    []string{},
		Duplicates: []string{},
		Warnings:   []string{},
		Aliases:    map[string]string{},
		Columns:    len(headers),
	}

	seen := make(map[string]int, len(headers))
	for _, h := range headers {
		seen[h]++
		if seen[h] == 2 {
			result.Duplicates = append(result.Duplicates, h)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate column %q: the last occurrence wins", h))
		}
	}

	for _, col := range required {
		if seen[col] > 0 {
			continue
		}

		result.Missing = append(result.Missing, col)

		msg := fmt.Sprintf("missing column %q", col)
		if near := closest(headers, col); near != "" {
			result.Aliases[near] = col
			msg += fmt.Sprintf(" (found %q)", near)
		}

		result.Warnings = append(result.Warnings, msg)
	}

	return result
}

// Rekey renames aliased columns in place so records carry the required
// column names.
func Rekey(records []models.RawRecord, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	for _, rec := range records {
		for from, to := range aliases {
			if v, ok := rec[from]; ok {
				delete(rec, from)
				rec[to] = v
			}
		}
	}
}

// closest returns a header equal to col once whitespace and case are ignored.
func closest(headers []string, col string) string {
	want := squash(col)
	for _, h := range headers {
		if squash(h) == want {
			return h
		}
	}

	return ""
}

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// String returns string representation of the check result.
func (r *Result) String() string {
	status := "✅ HEADER OK"
	if !r.OK() {
		status = "⚠️  HEADER INCOMPLETE"
	}

	return fmt.Sprintf("%s | Columns: %d | Missing: %d | Duplicates: %d",
		status, r.Columns, len(r.Missing), len(r.Duplicates))
}

// PrintWarnings prints header warnings.
func (r *Result) PrintWarnings() {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Println("⚠️  Header Warnings:")

	for _, warn := range r.Warnings {
		fmt.Printf("  %s\n", warn)
	}
}
