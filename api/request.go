package api

import (
	"fmt"
	"strconv"
	"strings"

	"rasporedApp/database"
)

// flexInt accepts a JSON number or a numeric string. The calendar form
// posts every field as a string, the API contract uses numbers.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a whole number: %q", s)
	}
	*f = flexInt(v)
	return nil
}

type eventRequest struct {
	GrupaID      flexInt `json:"id_grupa_fk"`
	NastavnikID  flexInt `json:"id_nastavnik_fk"`
	DvoranaID    flexInt `json:"id_dvorana_fk"`
	Dan          string  `json:"dan"`
	VrijemeOd    string  `json:"vrijeme_od"`
	VrijemeDo    string  `json:"vrijeme_do"`
	BrTjedna     flexInt `json:"br_tjedna"`
	OblikNastave string  `json:"oblik_nastave"`
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "Missing required field: " + e.Field
}

// validate checks that all eight writable fields are present and
// non-empty, reporting the first one that is not.
func (r *eventRequest) validate() error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"id_grupa_fk", r.GrupaID != 0},
		{"id_nastavnik_fk", r.NastavnikID != 0},
		{"id_dvorana_fk", r.DvoranaID != 0},
		{"dan", strings.TrimSpace(r.Dan) != ""},
		{"vrijeme_od", strings.TrimSpace(r.VrijemeOd) != ""},
		{"vrijeme_do", strings.TrimSpace(r.VrijemeDo) != ""},
		{"br_tjedna", r.BrTjedna != 0},
		{"oblik_nastave", strings.TrimSpace(r.OblikNastave) != ""},
	}

	for _, c := range checks {
		if !c.ok {
			return &ValidationError{Field: c.field}
		}
	}
	return nil
}

func (r *eventRequest) fields() database.EventFields {
	return database.EventFields{
		GrupaID:      int64(r.GrupaID),
		NastavnikID:  int64(r.NastavnikID),
		DvoranaID:    int64(r.DvoranaID),
		Dan:          r.Dan,
		VrijemeOd:    r.VrijemeOd,
		VrijemeDo:    r.VrijemeDo,
		BrTjedna:     int(r.BrTjedna),
		OblikNastave: r.OblikNastave,
	}
}
