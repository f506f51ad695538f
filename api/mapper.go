package api

import (
	"database/sql"

	"rasporedApp/database"
)

const (
	clockLayout     = "15:04"
	timestampLayout = "2006-01-02 15:04:05"
)

// clock formats a time-of-day column as zero-padded HH:MM, or nil when
// the column was NULL.
func clock(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	v := t.Time.Format(clockLayout)
	return &v
}

func timestamp(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(timestampLayout)
}

func timestampOrNull(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	v := t.Time.Format(timestampLayout)
	return &v
}

// EventDTO is the wire shape of one calendar event. Field names are
// the original column aliases the front end binds to.
type EventDTO struct {
	ID           int64   `json:"id_dogadaj"`
	Dan          string  `json:"dan"`
	VrijemeOd    *string `json:"vrijeme_od"`
	VrijemeDo    *string `json:"vrijeme_do"`
	BrTjedna     int     `json:"br_tjedna"`
	OblikNastave string  `json:"oblik_nastave"`
	GrupaID      int64   `json:"id_grupa_fk"`
	NastavnikID  int64   `json:"id_nastavnik_fk"`
	DvoranaID    int64   `json:"id_dvorana_fk"`
	KolegijNaziv string  `json:"kolegij_naziv"`
	DvoranaNaziv string  `json:"dvorana_naziv"`
	NastavnikIme string  `json:"nastavnik_ime"`
	GrupaNaziv   string  `json:"grupa_naziv"`
}

func mapEvents(rows []database.EventRow) []EventDTO {
	events := make([]EventDTO, 0, len(rows))
	for _, r := range rows {
		events = append(events, EventDTO{
			ID:           r.ID,
			Dan:          r.Dan,
			VrijemeOd:    clock(r.VrijemeOd),
			VrijemeDo:    clock(r.VrijemeDo),
			BrTjedna:     r.BrTjedna,
			OblikNastave: r.OblikNastave,
			GrupaID:      r.GrupaID,
			NastavnikID:  r.NastavnikID,
			DvoranaID:    r.DvoranaID,
			KolegijNaziv: r.KolegijNaziv,
			DvoranaNaziv: r.DvoranaNaziv,
			NastavnikIme: r.NastavnikIme,
			GrupaNaziv:   r.GrupaNaziv,
		})
	}
	return events
}

type StudentScheduleDTO struct {
	JMBAG     string  `json:"jmbag"`
	Student   string  `json:"student"`
	Dan       string  `json:"dan"`
	VrijemeOd *string `json:"vrijeme_od"`
	VrijemeDo *string `json:"vrijeme_do"`
	Kolegij   string  `json:"kolegij"`
	Dvorana   string  `json:"dvorana"`
	Nastavnik string  `json:"nastavnik"`
}

func mapStudentSchedule(rows []database.StudentScheduleRow) []StudentScheduleDTO {
	entries := make([]StudentScheduleDTO, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, StudentScheduleDTO{
			JMBAG:     r.JMBAG,
			Student:   r.Student,
			Dan:       r.Dan,
			VrijemeOd: clock(r.VrijemeOd),
			VrijemeDo: clock(r.VrijemeDo),
			Kolegij:   r.Kolegij,
			Dvorana:   r.Dvorana,
			Nastavnik: r.Nastavnik,
		})
	}
	return entries
}

type EmailChangeDTO struct {
	StariEmail      string `json:"stari_email"`
	VrijemePromjene string `json:"vrijeme_promjene"`
}

func mapEmailChanges(rows []database.EmailChangeRow) []EmailChangeDTO {
	entries := make([]EmailChangeDTO, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, EmailChangeDTO{
			StariEmail:      r.StariEmail,
			VrijemePromjene: timestamp(r.VrijemePromjene),
		})
	}
	return entries
}

type EventHistoryDTO struct {
	KolegijNaziv string  `json:"kolegij_naziv"`
	Dan          string  `json:"dan"`
	VrijemeOd    *string `json:"vrijeme_od"`
	VrijemeDo    *string `json:"vrijeme_do"`
	VrijediloDo  *string `json:"vrijedilo_do"`
}

func mapEventHistory(rows []database.EventHistoryRow) []EventHistoryDTO {
	entries := make([]EventHistoryDTO, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, EventHistoryDTO{
			KolegijNaziv: r.KolegijNaziv,
			Dan:          r.Dan,
			VrijemeOd:    clock(r.VrijemeOd),
			VrijemeDo:    clock(r.VrijemeDo),
			VrijediloDo:  timestampOrNull(r.VrijediloDo),
		})
	}
	return entries
}
