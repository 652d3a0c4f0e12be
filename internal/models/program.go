// Package models defines data structures for the listing parser and normalizer.
package models

// Column headers read from the listing snapshot.
const (
	ColGeographicLevel = "Geographic Level"
	ColState           = "State"
	ColLocality        = "City/County/ Locality"
	ColTribalTerritory = "Tribal Government/ Territory"
	ColProgramName     = "Program Name"
	ColProgramStatus   = "Program Status"
	ColContact         = "Program Page Link  (Phone # if Link is Unavailable)"
)

// RequiredColumns lists the headers the normalizer reads.
var RequiredColumns = []string{
	ColGeographicLevel,
	ColState,
	ColLocality,
	ColTribalTerritory,
	ColProgramName,
	ColProgramStatus,
	ColContact,
}

// Jurisdiction kinds found in the Geographic Level column.
const (
	TypeState     = "State"
	TypeCounty    = "County"
	TypeCity      = "City"
	TypeTribal    = "Tribal Government"
	TypeTerritory = "Territory"
)

// RawRecord is one data row keyed by column header. Cells missing from the
// end of a short row are absent keys.
type RawRecord map[string]string

// Get returns the cell for column and whether the row had one.
func (r RawRecord) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Value returns the cell for column, or "" when absent.
func (r RawRecord) Value(column string) string {
	return r[column]
}

// Program is a normalized listing entry.
type Program struct {
	Type    string `json:"type"`
	Status  string `json:"status,omitempty"`
	State   string `json:"state"`
	Program string `json:"program"`
	Name    string `json:"name"`
	County  string `json:"county,omitempty"`
	URL     string `json:"url,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ResultSet holds normalized programs partitioned by jurisdiction.
type ResultSet struct {
	Geographic []Program `json:"geographic"`
	Tribal     []Program `json:"tribal"`
}

// NewResultSet returns an empty result set whose partitions encode as [].
func NewResultSet() ResultSet {
	return ResultSet{
		Geographic: []Program{},
		Tribal:     []Program{},
	}
}

// Diagnostics collects data-quality messages in the order they were found.
type Diagnostics struct {
	NoContact []string
	NoCounty  []string
	NoURL     []string
	BadStatus []string
}

// Len returns the total number of messages.
func (d *Diagnostics) Len() int {
	return len(d.NoContact) + len(d.NoCounty) + len(d.NoURL) + len(d.BadStatus)
}

// Lines returns every message in report order: county, contact, URL, status.
func (d *Diagnostics) Lines() []string {
	lines := make([]string, 0, d.Len())
	lines = append(lines, d.NoCounty...)
	lines = append(lines, d.NoContact...)
	lines = append(lines, d.NoURL...)
	lines = append(lines, d.BadStatus...)

	return lines
}
