package database

type EventRepository struct {
	exec *Executor
}

func NewEventRepository(exec *Executor) *EventRepository {
	return &EventRepository{exec: exec}
}

// ListWeek returns the denormalized events of one calendar week,
// scoped to the courses of the given academic year.
func (r *EventRepository) ListWeek(year, week int) ([]EventRow, error) {
	var events []EventRow
	query := `
        SELECT d.id_dogadaj, d.dan, d.vrijeme_od, d.vrijeme_do,
               d.br_tjedna, d.oblik_nastave,
               d.id_grupa_fk, d.id_nastavnik_fk, d.id_dvorana_fk,
               k.naziv AS kolegij_naziv,
               dv.naziv AS dvorana_naziv,
               n.ime_prezime AS nastavnik_ime,
               g.naziv AS grupa_naziv
        FROM dogadaj d
        JOIN grupa g ON d.id_grupa_fk = g.id_grupa
        JOIN kolegij k ON g.id_kolegij_fk = k.id_kolegij
        JOIN dvorana dv ON d.id_dvorana_fk = dv.id_dvorana
        JOIN nastavnik n ON d.id_nastavnik_fk = n.id_nastavnik
        WHERE k.akademska_godina = $1 AND d.br_tjedna = $2
        ORDER BY d.vrijeme_od`
	err := r.exec.Query(&events, FetchAll, query, year, week)
	return events, err
}

func (r *EventRepository) Create(f EventFields) (int64, error) {
	return r.exec.Insert(`
        INSERT INTO dogadaj (id_grupa_fk, id_nastavnik_fk, id_dvorana_fk,
                             dan, vrijeme_od, vrijeme_do, br_tjedna, oblik_nastave)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id_dogadaj`,
		f.GrupaID, f.NastavnikID, f.DvoranaID,
		f.Dan, f.VrijemeOd, f.VrijemeDo, f.BrTjedna, f.OblikNastave)
}

// Update overwrites the full record and reports how many rows matched
// the identifier.
func (r *EventRepository) Update(id int64, f EventFields) (int64, error) {
	return r.exec.Exec(`
        UPDATE dogadaj
        SET id_grupa_fk = $1, id_nastavnik_fk = $2, id_dvorana_fk = $3,
            dan = $4, vrijeme_od = $5, vrijeme_do = $6,
            br_tjedna = $7, oblik_nastave = $8
        WHERE id_dogadaj = $9`,
		f.GrupaID, f.NastavnikID, f.DvoranaID,
		f.Dan, f.VrijemeOd, f.VrijemeDo, f.BrTjedna, f.OblikNastave, id)
}

func (r *EventRepository) Delete(id int64) error {
	_, err := r.exec.Exec(`DELETE FROM dogadaj WHERE id_dogadaj = $1`, id)
	return err
}

// ReferenceRepository serves the ordered listings that fill the event
// form's select boxes.
type ReferenceRepository struct {
	exec *Executor
}

func NewReferenceRepository(exec *Executor) *ReferenceRepository {
	return &ReferenceRepository{exec: exec}
}

func (r *ReferenceRepository) Groups() ([]GroupRow, error) {
	groups := make([]GroupRow, 0)
	err := r.exec.Query(&groups, FetchAll,
		`SELECT id_grupa, naziv FROM grupa ORDER BY naziv`)
	return groups, err
}

func (r *ReferenceRepository) Teachers() ([]TeacherRow, error) {
	teachers := make([]TeacherRow, 0)
	err := r.exec.Query(&teachers, FetchAll,
		`SELECT id_nastavnik, ime_prezime FROM nastavnik ORDER BY ime_prezime`)
	return teachers, err
}

func (r *ReferenceRepository) Halls() ([]HallRow, error) {
	halls := make([]HallRow, 0)
	err := r.exec.Query(&halls, FetchAll,
		`SELECT id_dvorana, naziv FROM dvorana ORDER BY naziv`)
	return halls, err
}
