package database

import (
	"database/sql"
)

// EventRow is the denormalized weekly-schedule row produced by joining
// dogadaj with grupa, kolegij, dvorana and nastavnik. Column aliases
// match what the calendar front end expects.
type EventRow struct {
	ID           int64        `db:"id_dogadaj"`
	Dan          string       `db:"dan"`
	VrijemeOd    sql.NullTime `db:"vrijeme_od"`
	VrijemeDo    sql.NullTime `db:"vrijeme_do"`
	BrTjedna     int          `db:"br_tjedna"`
	OblikNastave string       `db:"oblik_nastave"`
	GrupaID      int64        `db:"id_grupa_fk"`
	NastavnikID  int64        `db:"id_nastavnik_fk"`
	DvoranaID    int64        `db:"id_dvorana_fk"`
	KolegijNaziv string       `db:"kolegij_naziv"`
	DvoranaNaziv string       `db:"dvorana_naziv"`
	NastavnikIme string       `db:"nastavnik_ime"`
	GrupaNaziv   string       `db:"grupa_naziv"`
}

// EventFields carries the eight writable attributes of an event for
// insert and full-record update.
type EventFields struct {
	GrupaID      int64
	NastavnikID  int64
	DvoranaID    int64
	Dan          string
	VrijemeOd    string
	VrijemeDo    string
	BrTjedna     int
	OblikNastave string
}

type GroupRow struct {
	ID    int64  `db:"id_grupa" json:"id_grupa"`
	Naziv string `db:"naziv" json:"naziv"`
}

type TeacherRow struct {
	ID         int64  `db:"id_nastavnik" json:"id_nastavnik"`
	ImePrezime string `db:"ime_prezime" json:"ime_prezime"`
}

type HallRow struct {
	ID    int64  `db:"id_dvorana" json:"id_dvorana"`
	Naziv string `db:"naziv" json:"naziv"`
}

// TeacherCourseRow comes from the nastavnici_kolegiji view.
type TeacherCourseRow struct {
	Nastavnik string `db:"nastavnik" json:"nastavnik"`
	Kolegij   string `db:"kolegij" json:"kolegij"`
	Semestar  int    `db:"semestar" json:"semestar"`
}

// StudentScheduleRow comes from the raspored_studenta view.
type StudentScheduleRow struct {
	JMBAG     string       `db:"jmbag"`
	Student   string       `db:"student"`
	Dan       string       `db:"dan"`
	VrijemeOd sql.NullTime `db:"vrijeme_od"`
	VrijemeDo sql.NullTime `db:"vrijeme_do"`
	Kolegij   string       `db:"kolegij"`
	Dvorana   string       `db:"dvorana"`
	Nastavnik string       `db:"nastavnik"`
}

// EmailChangeRow comes from log_promjena_email, written by a database
// rule whenever a teacher's email changes.
type EmailChangeRow struct {
	StariEmail      string       `db:"stari_email"`
	VrijemePromjene sql.NullTime `db:"vrijeme_promjene"`
}

// EventHistoryRow comes from povijest_dogadaja, written by a database
// trigger when an event is overwritten or deleted.
type EventHistoryRow struct {
	KolegijNaziv string       `db:"kolegij_naziv"`
	Dan          string       `db:"dan"`
	VrijemeOd    sql.NullTime `db:"vrijeme_od"`
	VrijemeDo    sql.NullTime `db:"vrijeme_do"`
	VrijediloDo  sql.NullTime `db:"vrijedilo_do"`
}
