package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"fibtest/internal/domain"
)

const (
	createRunsTable = "CREATE TABLE IF NOT EXISTS fibtest_runs (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, total_tests INT NOT NULL, passed_tests INT NOT NULL, " +
		"failed_tests INT NOT NULL, duration_seconds DOUBLE NOT NULL, workers INT NOT NULL, created_at DATETIME NOT NULL)"
	createFailuresTable = "CREATE TABLE IF NOT EXISTS fibtest_failures (" +
		"run_id BIGINT NOT NULL, position INT NOT NULL, test_name VARCHAR(255) NOT NULL, file VARCHAR(255) NOT NULL, " +
		"line INT NOT NULL, message TEXT NOT NULL, resolved BOOLEAN NOT NULL DEFAULT FALSE, PRIMARY KEY (run_id, position))"

	insertRunQuery = "INSERT INTO fibtest_runs (total_tests, passed_tests, failed_tests, duration_seconds, workers, created_at) " +
		"VALUES (?, ?, ?, ?, ?, ?)"
	insertFailureQuery = "INSERT INTO fibtest_failures (run_id, position, test_name, file, line, message, resolved) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?)"

	selectLatestRunQuery = "SELECT id, total_tests, passed_tests, failed_tests, duration_seconds, workers, created_at " +
		"FROM fibtest_runs ORDER BY id DESC LIMIT 1"
	selectLatestRunIDQuery = "SELECT id FROM fibtest_runs ORDER BY id DESC LIMIT 1"
	selectFailuresQuery    = "SELECT test_name, file, line, message, resolved FROM fibtest_failures WHERE run_id = ? ORDER BY position"
	updateResolvedQuery    = "UPDATE fibtest_failures SET resolved = ? WHERE run_id = ? AND test_name = ?"
)

// MySQLStorage records every run in MySQL; Load returns the most recent one.
type MySQLStorage struct {
	db  *sql.DB
	now func() time.Time

	mu    sync.Mutex
	ready bool
}

// NewMySQLStorage opens a MySQL handle for dsn. No connection is made until first use.
func NewMySQLStorage(dsn string) (*MySQLStorage, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open result database: %w", err)
	}
	return NewMySQLStorageFromDB(db), nil
}

// NewMySQLStorageFromDB wraps an existing database handle
func NewMySQLStorageFromDB(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{db: db, now: time.Now}
}

// Close releases the database handle
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

// ensureSchema creates the result tables on first use
func (s *MySQLStorage) ensureSchema() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	for _, stmt := range []string{createRunsTable, createFailuresTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create result tables: %w", err)
		}
	}
	s.ready = true
	return nil
}

// Save inserts the run and its failures in one transaction
func (s *MySQLStorage) Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}

	at := s.now().UTC()
	output := BuildOutput(results, failures, duration, workers, at)
	meta := output.Meta

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(insertRunQuery, meta.TotalTests, meta.PassedTests, meta.FailedTests, meta.DurationSeconds, meta.Workers, at)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("read run id: %w", err)
	}

	for i, f := range output.Details {
		if _, err := tx.Exec(insertFailureQuery, runID, i, f.TestName, f.File, f.Line, f.Message, f.Resolved); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert failure %s: %w", f.TestName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// Load reads the most recent run
func (s *MySQLStorage) Load() (*domain.TestResultsOutput, error) {
	var (
		runID     int64
		meta      domain.TestResultsMeta
		createdAt string
	)
	err := s.db.QueryRow(selectLatestRunQuery).Scan(
		&runID, &meta.TotalTests, &meta.PassedTests, &meta.FailedTests, &meta.DurationSeconds, &meta.Workers, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no recorded runs: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("read latest run: %w", err)
	}
	meta.Duration = time.Duration(meta.DurationSeconds * float64(time.Second)).String()
	meta.Timestamp = createdAt

	rows, err := s.db.Query(selectFailuresQuery, runID)
	if err != nil {
		return nil, fmt.Errorf("read failures: %w", err)
	}
	defer rows.Close()

	details := []domain.TestFailure{}
	for rows.Next() {
		var f domain.TestFailure
		if err := rows.Scan(&f.TestName, &f.File, &f.Line, &f.Message, &f.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		details = append(details, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read failures: %w", err)
	}

	return &domain.TestResultsOutput{Meta: meta, Details: details}, nil
}

// SaveOutput stores the resolved flags of output against the most recent run.
// Failures are matched by test name; names missing from that run are left alone.
func (s *MySQLStorage) SaveOutput(output *domain.TestResultsOutput) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	var runID int64
	if err := tx.QueryRow(selectLatestRunIDQuery).Scan(&runID); err != nil {
		tx.Rollback()
		return fmt.Errorf("read latest run: %w", err)
	}
	for _, d := range output.Details {
		if _, err := tx.Exec(updateResolvedQuery, d.Resolved, runID, d.TestName); err != nil {
			tx.Rollback()
			return fmt.Errorf("update failure %s: %w", d.TestName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit resolved flags: %w", err)
	}
	return nil
}
