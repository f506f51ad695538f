package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"rasporedApp/config"
)

var eventColumns = []string{
	"id_dogadaj", "dan", "vrijeme_od", "vrijeme_do", "br_tjedna", "oblik_nastave",
	"id_grupa_fk", "id_nastavnik_fk", "id_dvorana_fk",
	"kolegij_naziv", "dvorana_naziv", "nastavnik_ime", "grupa_naziv",
}

func clockTime(hour, min int) time.Time {
	return time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	s, _ := newTestServer(t, nil)
	// Tuesday of ISO week 5, 2024.
	s.now = func() time.Time { return time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		year, week string
		wantYear   int
		wantWeek   int
	}{
		{"both present", "2023", "11", 2023, 11},
		{"both missing", "", "", 2024, 5},
		{"week missing", "2023", "", 2024, 5},
		{"year missing", "", "11", 2024, 5},
		{"unparseable week", "2023", "abc", 2024, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := s.weekOf(tt.year, tt.week)
			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("weekOf(%q, %q) = (%d, %d), want (%d, %d)",
					tt.year, tt.week, year, week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}

func TestListEventsFormatsTimes(t *testing.T) {
	s, mock := newTestServer(t, nil)

	rows := sqlmock.NewRows(eventColumns).AddRow(
		int64(10), "Ponedjeljak", clockTime(9, 0), clockTime(10, 30), 5, "P",
		int64(1), int64(2), int64(3),
		"Baze podataka", "D-101", "Ivana Ivić", "G1")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT d.id_dogadaj").WithArgs(2024, 5).WillReturnRows(rows)
	mock.ExpectCommit()

	w := perform(s, http.MethodGet, "/api/events?year=2024&week=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Year   int        `json:"year"`
		Week   int        `json:"week"`
		Events []EventDTO `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Year != 2024 || resp.Week != 5 {
		t.Errorf("year/week = %d/%d, want 2024/5", resp.Year, resp.Week)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(resp.Events))
	}
	e := resp.Events[0]
	if e.VrijemeOd == nil || *e.VrijemeOd != "09:00" {
		t.Errorf("vrijeme_od = %v, want 09:00", e.VrijemeOd)
	}
	if e.VrijemeDo == nil || *e.VrijemeDo != "10:30" {
		t.Errorf("vrijeme_do = %v, want 10:30", e.VrijemeDo)
	}
	if e.KolegijNaziv != "Baze podataka" {
		t.Errorf("kolegij_naziv = %q", e.KolegijNaziv)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListEventsDefaultsToCurrentWeek(t *testing.T) {
	s, mock := newTestServer(t, nil)
	s.now = func() time.Time { return time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC) }

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT d.id_dogadaj").WithArgs(2024, 5).
		WillReturnRows(sqlmock.NewRows(eventColumns))
	mock.ExpectCommit()

	w := perform(s, http.MethodGet, "/api/events", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Year   int        `json:"year"`
		Week   int        `json:"week"`
		Events []EventDTO `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Year != 2024 || resp.Week != 5 {
		t.Errorf("defaulted year/week = %d/%d, want 2024/5", resp.Year, resp.Week)
	}
	if resp.Events == nil {
		t.Error("events should be an empty array, not null")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListEventsQueryError(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT d.id_dogadaj").WillReturnError(errDummy)
	mock.ExpectRollback()

	w := perform(s, http.MethodGet, "/api/events?year=2024&week=5", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

const validEventBody = `{"id_grupa_fk":1,"id_nastavnik_fk":2,"id_dvorana_fk":3,` +
	`"dan":"Ponedjeljak","vrijeme_od":"09:00","vrijeme_do":"10:30",` +
	`"br_tjedna":5,"oblik_nastave":"P"}`

func TestCreateEvent(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO dogadaj").
		WithArgs(int64(1), int64(2), int64(3), "Ponedjeljak", "09:00", "10:30", 5, "P").
		WillReturnRows(sqlmock.NewRows([]string{"id_dogadaj"}).AddRow(int64(42)))
	mock.ExpectCommit()

	w := perform(s, http.MethodPost, "/api/events", validEventBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message  string `json:"message"`
		NewEvent struct {
			ID int64 `json:"id_dogadaj"`
		} `json:"new_event"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.NewEvent.ID != 42 {
		t.Errorf("new_event.id_dogadaj = %d, want 42", resp.NewEvent.ID)
	}
	if resp.Message == "" {
		t.Error("message missing")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateEventAcceptsStringNumbers(t *testing.T) {
	s, mock := newTestServer(t, nil)

	// The calendar form posts every value as a string.
	body := `{"id_grupa_fk":"1","id_nastavnik_fk":"2","id_dvorana_fk":"3",` +
		`"dan":"Utorak","vrijeme_od":"11:00","vrijeme_do":"12:30",` +
		`"br_tjedna":"7","oblik_nastave":"V"}`

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO dogadaj").
		WithArgs(int64(1), int64(2), int64(3), "Utorak", "11:00", "12:30", 7, "V").
		WillReturnRows(sqlmock.NewRows([]string{"id_dogadaj"}).AddRow(int64(7)))
	mock.ExpectCommit()

	w := perform(s, http.MethodPost, "/api/events", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateEventMissingFields(t *testing.T) {
	required := []string{
		"id_grupa_fk", "id_nastavnik_fk", "id_dvorana_fk",
		"dan", "vrijeme_od", "vrijeme_do", "br_tjedna", "oblik_nastave",
	}

	full := map[string]interface{}{
		"id_grupa_fk": 1, "id_nastavnik_fk": 2, "id_dvorana_fk": 3,
		"dan": "Ponedjeljak", "vrijeme_od": "09:00", "vrijeme_do": "10:30",
		"br_tjedna": 5, "oblik_nastave": "P",
	}

	for _, field := range required {
		t.Run("missing "+field, func(t *testing.T) {
			s, mock := newTestServer(t, nil)

			body := map[string]interface{}{}
			for k, v := range full {
				if k != field {
					body[k] = v
				}
			}
			raw, _ := json.Marshal(body)

			w := perform(s, http.MethodPost, "/api/events", string(raw))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}

			// Validation failures must never reach the store.
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("store was touched: %v", err)
			}
		})
	}
}

func TestCreateEventEmptyField(t *testing.T) {
	s, mock := newTestServer(t, nil)

	body := `{"id_grupa_fk":1,"id_nastavnik_fk":2,"id_dvorana_fk":3,` +
		`"dan":"  ","vrijeme_od":"09:00","vrijeme_do":"10:30",` +
		`"br_tjedna":5,"oblik_nastave":"P"}`

	w := perform(s, http.MethodPost, "/api/events", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}

func TestCreateEventStoreError(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO dogadaj").WillReturnError(errDummy)
	mock.ExpectRollback()

	w := perform(s, http.MethodPost, "/api/events", validEventBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("error message missing")
	}
}

func TestUpdateEvent(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE dogadaj").
		WithArgs(int64(1), int64(2), int64(3), "Ponedjeljak", "09:00", "10:30", 5, "P", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := perform(s, http.MethodPut, "/api/events/7", validEventBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateEventNoMatch(t *testing.T) {
	// Zero rows affected is reported as success unless strict updates
	// are configured.
	t.Run("default", func(t *testing.T) {
		s, mock := newTestServer(t, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE dogadaj").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		w := perform(s, http.MethodPut, "/api/events/999", validEventBody)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("strict", func(t *testing.T) {
		s, mock := newTestServer(t, &config.Config{StrictUpdates: true})

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE dogadaj").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		w := perform(s, http.MethodPut, "/api/events/999", validEventBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
		}
	})
}

func TestUpdateEventMissingField(t *testing.T) {
	s, mock := newTestServer(t, nil)

	body := `{"id_grupa_fk":1,"id_nastavnik_fk":2,"id_dvorana_fk":3,` +
		`"dan":"Ponedjeljak","vrijeme_od":"09:00","vrijeme_do":"10:30","br_tjedna":5}`

	w := perform(s, http.MethodPut, "/api/events/7", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}

func TestDeleteEventIdempotent(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dogadaj").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dogadaj").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	for i := 0; i < 2; i++ {
		w := perform(s, http.MethodDelete, "/api/events/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("delete #%d: status = %d, want 200; body: %s", i+1, w.Code, w.Body.String())
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteEventBadID(t *testing.T) {
	s, mock := newTestServer(t, nil)

	w := perform(s, http.MethodDelete, "/api/events/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}
