package database

// ReportRepository reads the precomputed views and log tables kept by
// the database schema (views, rules and triggers are owned by the
// schema, this layer only selects from them).
type ReportRepository struct {
	exec *Executor
}

func NewReportRepository(exec *Executor) *ReportRepository {
	return &ReportRepository{exec: exec}
}

func (r *ReportRepository) TeacherCourses() ([]TeacherCourseRow, error) {
	rows := make([]TeacherCourseRow, 0)
	err := r.exec.Query(&rows, FetchAll,
		`SELECT nastavnik, kolegij, semestar FROM nastavnici_kolegiji`)
	return rows, err
}

func (r *ReportRepository) StudentSchedule(jmbag string) ([]StudentScheduleRow, error) {
	var rows []StudentScheduleRow
	err := r.exec.Query(&rows, FetchAll, `
        SELECT jmbag, student, dan, vrijeme_od, vrijeme_do,
               kolegij, dvorana, nastavnik
        FROM raspored_studenta
        WHERE jmbag = $1`, jmbag)
	return rows, err
}

func (r *ReportRepository) EmailChanges() ([]EmailChangeRow, error) {
	var rows []EmailChangeRow
	err := r.exec.Query(&rows, FetchAll, `
        SELECT stari_email, vrijeme_promjene
        FROM log_promjena_email
        ORDER BY vrijeme_promjene DESC
        LIMIT 20`)
	return rows, err
}

func (r *ReportRepository) EventHistory() ([]EventHistoryRow, error) {
	var rows []EventHistoryRow
	err := r.exec.Query(&rows, FetchAll, `
        SELECT kolegij_naziv, dan, vrijeme_od, vrijeme_do, vrijedilo_do
        FROM povijest_dogadaja
        ORDER BY vrijedilo_do DESC
        LIMIT 20`)
	return rows, err
}
