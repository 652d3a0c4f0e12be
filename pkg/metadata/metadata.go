// Package metadata describes a normalizer run so that outputs can be traced
// back to the snapshot they came from.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrHashMismatch is returned when content does not match a recorded digest.
var ErrHashMismatch = errors.New("hash mismatch")

// Stamp identifies one run: the input snapshot, the output it produced and when.
type Stamp struct {
	GeneratedAt time.Time
	Source      string
	InputHash   string
	OutputHash  string
	Records     int
}

// Digest computes the SHA-256 hash of content.
func Digest(content []byte) string {
	hash := sha256.Sum256(content)

	return hex.EncodeToString(hash[:])
}

// NewStamp records the input side of a run.
func NewStamp(source string, input []byte, records int) *Stamp {
	return &Stamp{
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		InputHash:   Digest(input),
		Records:     records,
	}
}

// SetOutput records the digest of the written program directory.
func (s *Stamp) SetOutput(output []byte) {
	s.OutputHash = Digest(output)
}

// Verify checks content against an expected digest.
func Verify(content []byte, expected string) error {
	if calculated := Digest(content); calculated != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, expected, calculated)
	}

	return nil
}

// LogArgs returns the stamp as slog key/value pairs.
func (s *Stamp) LogArgs() []any {
	return []any{
		"source", s.Source,
		"records", s.Records,
		"input_sha256", s.InputHash,
		"output_sha256", s.OutputHash,
		"generated_at", s.GeneratedAt.Format(time.RFC3339),
	}
}
