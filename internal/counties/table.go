// Package counties resolves a state and locality to its canonical county.
package counties

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for table files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("county table must be .json, .yaml or .yml")

// Table maps state name to locality name to county name. It is read-only
// once loaded.
type Table map[string]map[string]string

// Resolve returns the county for a locality in state.
func (t Table) Resolve(state, locality string) (string, bool) {
	county, ok := t[state][locality]
	if !ok || county == "" {
		return "", false
	}

	return county, true
}

// Len returns the number of localities across all states.
func (t Table) Len() int {
	n := 0
	for _, localities := range t {
		n += len(localities)
	}

	return n
}

// Load reads a county table from a JSON or YAML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read county table: %w", err)
	}

	var table Table

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &table)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &table)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse county table %s: %w", path, err)
	}

	if table == nil {
		table = Table{}
	}

	return table, nil
}
