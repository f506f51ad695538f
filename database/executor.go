package database

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"rasporedApp/logger"
)

// FetchMode tells the executor how much of the result set a statement
// is expected to produce.
type FetchMode int

const (
	FetchNone FetchMode = iota
	FetchOne
	FetchAll
)

// ErrNoConnection is reported when no database connection could be
// acquired for a statement. The text is part of the API contract.
var ErrNoConnection = errors.New("Database connection failed")

// Executor runs every statement in its own transaction: acquire a
// connection, run, commit on success, rollback on failure. There is no
// cross-call transaction and no batching; a mutation is durable as soon
// as the call returns.
type Executor struct {
	db     *sqlx.DB
	logger *logger.Logger
}

func NewExecutor(db *sqlx.DB, logger *logger.Logger) *Executor {
	return &Executor{db: db, logger: logger}
}

func (e *Executor) begin() (*sqlx.Tx, error) {
	tx, err := e.db.Beginx()
	if err != nil {
		e.logger.Errorf("could not acquire connection: %v", err)
		return nil, ErrNoConnection
	}
	return tx, nil
}

// Query runs a SELECT and scans into dest: a single row for FetchOne,
// all rows for FetchAll. FetchNone runs the statement and discards any
// result.
func (e *Executor) Query(dest interface{}, mode FetchMode, query string, args ...interface{}) error {
	tx, err := e.begin()
	if err != nil {
		return err
	}

	switch mode {
	case FetchOne:
		err = tx.Get(dest, query, args...)
	case FetchAll:
		err = tx.Select(dest, query, args...)
	default:
		_, err = tx.Exec(query, args...)
	}

	if err != nil {
		_ = tx.Rollback()
		e.logger.Errorf("query failed: %v", err)
		return err
	}

	return tx.Commit()
}

// Exec runs a mutating statement and reports the number of rows it
// touched.
func (e *Executor) Exec(query string, args ...interface{}) (int64, error) {
	tx, err := e.begin()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		_ = tx.Rollback()
		e.logger.Errorf("exec failed: %v", err)
		return 0, err
	}

	affected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return affected, nil
}

// Insert runs an INSERT carrying a RETURNING clause and reports the
// generated identifier.
func (e *Executor) Insert(query string, args ...interface{}) (int64, error) {
	tx, err := e.begin()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.Get(&id, query, args...); err != nil {
		_ = tx.Rollback()
		e.logger.Errorf("insert failed: %v", err)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}
