package normalizer

import (
	"reflect"
	"testing"

	"erap/internal/counties"
	"erap/internal/models"
)

var testCounties = counties.Table{
	"Ohio": {"Springfield": "Clark County", "Franklin": "Franklin County"},
}

func newTestTransformer() *Transformer {
	return NewTransformer(testCounties, NewStatusValidator(), DefaultRules())
}

func row(level, state, locality, tribal, name, status, contact string) models.RawRecord {
	return models.RawRecord{
		models.ColGeographicLevel: level,
		models.ColState:           state,
		models.ColLocality:        locality,
		models.ColTribalTerritory: tribal,
		models.ColProgramName:     name,
		models.ColProgramStatus:   status,
		models.ColContact:         contact,
	}
}

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer(nil, nil, Rules{})
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}

	var diags models.Diagnostics

	prog, outcome := tr.Transform(row(models.TypeCity, "Ohio", "Springfield", "", "P", StatusRolling, "http://x"), &diags)
	if outcome != OutcomeGeographic {
		t.Fatalf("outcome = %v, want geographic", outcome)
	}

	if prog.Status != StatusRolling || prog.County != "" {
		t.Errorf("unexpected program with nil resolver: %+v", prog)
	}
}

func TestTransformer_Transform_City(t *testing.T) {
	tr := newTestTransformer()

	var diags models.Diagnostics

	prog, outcome := tr.Transform(
		row(models.TypeCity, "Ohio", "Springfield", "", "Test Program", StatusRolling, "www.test.gov"),
		&diags,
	)

	want := models.Program{
		Type:    "City",
		Status:  StatusRolling,
		State:   "Ohio",
		Program: "Test Program",
		Name:    "Springfield",
		County:  "Clark County",
		URL:     "http://www.test.gov",
	}

	if outcome != OutcomeGeographic {
		t.Errorf("outcome = %v, want geographic", outcome)
	}

	if prog != want {
		t.Errorf("Transform() = %+v, want %+v", prog, want)
	}

	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diags.Lines())
	}
}

func TestTransformer_Transform_CountyAsymmetry(t *testing.T) {
	tr := newTestTransformer()

	t.Run("County miss is silent", func(t *testing.T) {
		var diags models.Diagnostics

		prog, _ := tr.Transform(row(models.TypeCounty, "Ohio", "Nowhere County", "", "P", StatusRolling, "http://x"), &diags)
		if prog.County != "" {
			t.Errorf("County = %q, want empty", prog.County)
		}

		if diags.Len() != 0 {
			t.Errorf("unexpected diagnostics: %v", diags.Lines())
		}
	})

	t.Run("City miss is reported", func(t *testing.T) {
		var diags models.Diagnostics

		prog, _ := tr.Transform(row(models.TypeCity, "Ohio", "Nowhere", "", "P", StatusRolling, "http://x"), &diags)
		if prog.County != "" {
			t.Errorf("County = %q, want empty", prog.County)
		}

		want := []string{"No county: Nowhere, Ohio"}
		if !reflect.DeepEqual(diags.NoCounty, want) {
			t.Errorf("NoCounty = %v, want %v", diags.NoCounty, want)
		}
	})

	t.Run("County hit", func(t *testing.T) {
		var diags models.Diagnostics

		prog, _ := tr.Transform(row(models.TypeCounty, "Ohio", "Franklin", "", "P", StatusRolling, "http://x"), &diags)
		if prog.County != "Franklin County" {
			t.Errorf("County = %q, want Franklin County", prog.County)
		}
	})

	t.Run("State records are not resolved", func(t *testing.T) {
		var diags models.Diagnostics

		prog, _ := tr.Transform(row(models.TypeState, "Ohio", "Springfield", "", "P", StatusRolling, "http://x"), &diags)
		if prog.County != "" || len(diags.NoCounty) != 0 {
			t.Errorf("State record got county handling: %+v %v", prog, diags.NoCounty)
		}
	})
}

func TestTransformer_Transform_Territory(t *testing.T) {
	tr := newTestTransformer()

	tests := []struct {
		listing string
		want    string
	}{
		{listing: "Commonwealth of the Northern Mariana Islands", want: "Northern Mariana Islands"},
		{listing: "Guam", want: "Guam"},
	}

	for _, tt := range tests {
		t.Run(tt.listing, func(t *testing.T) {
			var diags models.Diagnostics

			prog, outcome := tr.Transform(row(models.TypeTerritory, "", "", tt.listing, "P", StatusRolling, "http://x"), &diags)
			if outcome != OutcomeGeographic {
				t.Errorf("outcome = %v, want geographic", outcome)
			}

			if prog.State != tt.want {
				t.Errorf("State = %q, want %q", prog.State, tt.want)
			}

			if prog.Name != tt.listing {
				t.Errorf("Name = %q, want %q", prog.Name, tt.listing)
			}
		})
	}
}

func TestTransformer_Transform_Tribal(t *testing.T) {
	tr := newTestTransformer()

	var diags models.Diagnostics

	prog, outcome := tr.Transform(row(models.TypeTribal, "Arizona", "", "Navajo Nation", "P", StatusWaitlist, "928-555-0100"), &diags)
	if outcome != OutcomeTribal {
		t.Errorf("outcome = %v, want tribal", outcome)
	}

	if prog.State != "Arizona" || prog.Name != "Navajo Nation" || prog.Phone != "928-555-0100" || prog.URL != "" {
		t.Errorf("unexpected program: %+v", prog)
	}

	want := []string{"No/bad URL: P, 928-555-0100"}
	if !reflect.DeepEqual(diags.NoURL, want) {
		t.Errorf("NoURL = %v, want %v", diags.NoURL, want)
	}
}

func TestTransformer_Transform_Suppression(t *testing.T) {
	tr := newTestTransformer()

	tests := []struct {
		name string
		rec  models.RawRecord
		want Outcome
	}{
		{
			name: "Texas state program",
			rec:  row(models.TypeState, "Texas", "", "", "TX Rent Relief", "garbage", ""),
			want: OutcomeSuppressed,
		},
		{
			name: "Mississippi state program",
			rec:  row(models.TypeState, "Mississippi", "", "", "RAMP", StatusRolling, "555"),
			want: OutcomeSuppressed,
		},
		{
			name: "Texas city program is kept",
			rec:  row(models.TypeCity, "Texas", "Austin", "", "Austin ERA", StatusRolling, "http://x"),
			want: OutcomeGeographic,
		},
		{
			name: "Permanently closed",
			rec:  row(models.TypeCity, "Ohio", "Springfield", "", "Closed", "Program permanently closed", ""),
			want: OutcomeClosed,
		},
		{
			name: "Closed marker inside longer status",
			rec:  row(models.TypeTribal, "", "", "X", "Closed", "Program permanently closed - funds spent", ""),
			want: OutcomeClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags models.Diagnostics

			prog, outcome := tr.Transform(tt.rec, &diags)
			if outcome != tt.want {
				t.Errorf("outcome = %v, want %v", outcome, tt.want)
			}

			if !outcome.Kept() {
				if prog != (models.Program{}) {
					t.Errorf("suppressed record produced %+v", prog)
				}

				if diags.Len() != 0 {
					t.Errorf("suppressed record produced diagnostics: %v", diags.Lines())
				}
			}
		})
	}
}

func TestTransformer_Transform_ConfigurableRules(t *testing.T) {
	tr := NewTransformer(testCounties, NewStatusValidator(), Rules{SuppressedStates: []string{"Ohio"}})

	var diags models.Diagnostics

	if _, outcome := tr.Transform(row(models.TypeState, "Texas", "", "", "P", StatusRolling, "http://x"), &diags); outcome != OutcomeGeographic {
		t.Errorf("Texas outcome = %v, want geographic when not in the suppressed set", outcome)
	}

	if _, outcome := tr.Transform(row(models.TypeState, "Ohio", "", "", "P", StatusRolling, "http://x"), &diags); outcome != OutcomeSuppressed {
		t.Errorf("Ohio outcome = %v, want suppressed", outcome)
	}

	if _, outcome := tr.Transform(row(models.TypeCity, "Ohio", "Springfield", "", "P", "Program permanently closed", ""), &diags); outcome != OutcomeGeographic {
		t.Errorf("empty closed marker should disable the closed filter, got %v", outcome)
	}
}

func TestTransformer_Transform_Diagnostics(t *testing.T) {
	tr := newTestTransformer()

	var diags models.Diagnostics

	prog, _ := tr.Transform(row(models.TypeCity, "Ohio", "Dayton", "", "Dayton Help", "Unknown", ""), &diags)

	if prog.Status != "" {
		t.Errorf("Status = %q, want omitted", prog.Status)
	}

	if prog.URL != "" || prog.Phone != "" {
		t.Errorf("contact set for empty cell: %+v", prog)
	}

	want := models.Diagnostics{
		NoContact: []string{"No contact: Dayton Help"},
		NoCounty:  []string{"No county: Dayton, Ohio"},
		BadStatus: []string{"Bad status: Dayton Help"},
	}

	if !reflect.DeepEqual(diags, want) {
		t.Errorf("diagnostics = %+v, want %+v", diags, want)
	}
}

func TestTransformer_Transform_AbsentCells(t *testing.T) {
	tr := newTestTransformer()

	var diags models.Diagnostics

	prog, outcome := tr.Transform(models.RawRecord{
		models.ColGeographicLevel: models.TypeCounty,
		models.ColState:           "Ohio",
		models.ColProgramName:     "Short Row",
	}, &diags)

	if outcome != OutcomeGeographic {
		t.Errorf("outcome = %v, want geographic", outcome)
	}

	if prog.Name != "" || prog.Status != "" {
		t.Errorf("unexpected program: %+v", prog)
	}

	if len(diags.BadStatus) != 1 || len(diags.NoContact) != 1 {
		t.Errorf("diagnostics = %+v", diags)
	}
}

func TestOutcome_String(t *testing.T) {
	for o, want := range map[Outcome]string{
		OutcomeGeographic: "geographic",
		OutcomeTribal:     "tribal",
		OutcomeClosed:     "closed",
		OutcomeSuppressed: "suppressed",
		Outcome(9):        "outcome(9)",
	} {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
