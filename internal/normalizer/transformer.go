package normalizer

import (
	"fmt"
	"strings"

	"erap/internal/models"
)

// Territory display names that differ from the listing.
const (
	marianaListing = "Commonwealth of the Northern Mariana Islands"
	marianaState   = "Northern Mariana Islands"
)

// DefaultClosedMarker marks a program that no longer exists.
const DefaultClosedMarker = "Program permanently closed"

// DefaultSuppressedStates lists states whose State-level programs are hidden.
var DefaultSuppressedStates = []string{"Texas", "Mississippi"}

// CountyResolver looks up the county for a locality.
type CountyResolver interface {
	Resolve(state, locality string) (string, bool)
}

// Outcome says where a transformed record belongs.
type Outcome int

// Record outcomes. Closed and Suppressed records produce no output and no
// diagnostics.
const (
	OutcomeGeographic Outcome = iota
	OutcomeTribal
	OutcomeClosed
	OutcomeSuppressed
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeGeographic:
		return "geographic"
	case OutcomeTribal:
		return "tribal"
	case OutcomeClosed:
		return "closed"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Kept reports whether the record is written to a partition.
func (o Outcome) Kept() bool {
	return o == OutcomeGeographic || o == OutcomeTribal
}

// Rules holds the filtering rules applied before normalization.
type Rules struct {
	ClosedMarker     string
	SuppressedStates []string
}

// DefaultRules returns the built-in filtering rules.
func DefaultRules() Rules {
	return Rules{
		ClosedMarker:     DefaultClosedMarker,
		SuppressedStates: append([]string(nil), DefaultSuppressedStates...),
	}
}

// Transformer converts one raw listing row into a normalized program.
type Transformer struct {
	counties   CountyResolver
	statuses   *StatusValidator
	closed     string
	suppressed map[string]struct{}
}

// NewTransformer creates a transformer. A nil status validator uses the
// default allow-list.
func NewTransformer(counties CountyResolver, statuses *StatusValidator, rules Rules) *Transformer {
	if statuses == nil {
		statuses = NewStatusValidator()
	}

	suppressed := make(map[string]struct{}, len(rules.SuppressedStates))
	for _, s := range rules.SuppressedStates {
		suppressed[s] = struct{}{}
	}

	return &Transformer{
		counties:   counties,
		statuses:   statuses,
		closed:     rules.ClosedMarker,
		suppressed: suppressed,
	}
}

// Transform normalizes rec, appending data-quality messages to diags. Bad
// data never fails the row; it only drops optional fields.
func (t *Transformer) Transform(rec models.RawRecord, diags *models.Diagnostics) (models.Program, Outcome) {
	if t.isClosed(rec) {
		return models.Program{}, OutcomeClosed
	}

	kind := rec.Value(models.ColGeographicLevel)
	state := rec.Value(models.ColState)

	if kind == models.TypeState {
		if _, ok := t.suppressed[state]; ok {
			return models.Program{}, OutcomeSuppressed
		}
	}

	programName := rec.Value(models.ColProgramName)
	prog := models.Program{
		Type:    kind,
		State:   state,
		Program: programName,
		Name:    NameFor(kind, rec),
	}

	if status := rec.Value(models.ColProgramStatus); t.statuses.IsValid(status) {
		prog.Status = status
	} else {
		diags.BadStatus = append(diags.BadStatus, "Bad status: "+programName)
	}

	if kind == models.TypeTerritory {
		prog.State = territoryState(rec.Value(models.ColTribalTerritory))
	}

	if kind == models.TypeCity || kind == models.TypeCounty {
		locality := rec.Value(models.ColLocality)

		county, ok := t.resolveCounty(state, locality)
		switch {
		case ok:
			prog.County = county
		case kind == models.TypeCity:
			diags.NoCounty = append(diags.NoCounty, fmt.Sprintf("No county: %s, %s", locality, state))
		}
	}

	contact := ClassifyContact(rec.Value(models.ColContact))
	switch contact.Kind {
	case ContactURL:
		prog.URL = contact.Value
	case ContactPhone:
		prog.Phone = contact.Value
		diags.NoURL = append(diags.NoURL, fmt.Sprintf("No/bad URL: %s, %s", programName, contact.Value))
	case ContactNone:
		diags.NoContact = append(diags.NoContact, "No contact: "+programName)
	}

	if kind == models.TypeTribal {
		return prog, OutcomeTribal
	}

	return prog, OutcomeGeographic
}

func (t *Transformer) isClosed(rec models.RawRecord) bool {
	return t.closed != "" && strings.Contains(rec.Value(models.ColProgramStatus), t.closed)
}

func (t *Transformer) resolveCounty(state, locality string) (string, bool) {
	if t.counties == nil {
		return "", false
	}

	return t.counties.Resolve(state, locality)
}

func territoryState(name string) string {
	if name == marianaListing {
		return marianaState
	}

	return name
}
