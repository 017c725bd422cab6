// Package storage provides SQLite-based persistence for finished match results.
// Only outcomes are recorded (winner, move count, duration); board contents
// are never stored. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-gomoku/internal/config"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished match.
type Result struct {
	ID        int64
	MatchID   string
	Variant   string
	BoardSize int
	Winner    string // "Black" or "White"
	Moves     int
	Duration  time.Duration
	Player    string // Local user or SSH user that hosted the match
	CreatedAt time.Time
}

// Tally aggregates results for one variant.
type Tally struct {
	Variant    string
	Games      int
	BlackWins  int
	WhiteWins  int
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(variant, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished match. A missing MatchID is filled with a
// new UUID. Returns the row ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Winner != "Black" && r.Winner != "White" {
		return 0, fmt.Errorf("storage: invalid winner %q", r.Winner)
	}
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (match_id, variant, board_size, winner, moves, duration_secs, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Variant, r.BoardSize, r.Winner, r.Moves, int64(r.Duration/time.Second), r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results for a variant, newest first.
// An empty variant returns results across all variants.
func (s *Store) RecentResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, match_id, variant, board_size, winner, moves, duration_secs, player, created_at
		 FROM results`
	args := []any{}
	if variant != "" {
		query += ` WHERE variant = ?`
		args = append(args, variant)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultByMatchID retrieves a result by its match ID.
// Returns nil without error when no such match exists.
func (s *Store) ResultByMatchID(matchID string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, variant, board_size, winner, moves, duration_secs, player, created_at
		 FROM results
		 WHERE match_id = ?`,
		matchID,
	)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Tally returns aggregated results for a variant.
func (s *Store) Tally(variant string) (*Tally, error) {
	t := &Tally{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'Black' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'White' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&t.Games, &t.BlackWins, &t.WhiteWins, &t.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get tally: %w", err)
	}
	t.LastPlayed = parseTimestamp(lastPlayed)

	return t, nil
}

// AllTallies returns tallies for every variant that has results.
func (s *Store) AllTallies() (map[string]*Tally, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*),
		        SUM(CASE WHEN winner = 'Black' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'White' THEN 1 ELSE 0 END),
		        AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get tallies: %w", err)
	}
	defer rows.Close()

	tallies := make(map[string]*Tally)
	for rows.Next() {
		var t Tally
		var lastPlayed any
		if err := rows.Scan(&t.Variant, &t.Games, &t.BlackWins, &t.WhiteWins, &t.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		t.LastPlayed = parseTimestamp(lastPlayed)
		tallies[t.Variant] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tallies, nil
}

// Variants returns the IDs of every variant that has results, sorted.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT variant FROM results ORDER BY variant")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list variants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan variant row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var r Result
	var durationSecs int64
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.MatchID,
		&r.Variant,
		&r.BoardSize,
		&r.Winner,
		&r.Moves,
		&durationSecs,
		&r.Player,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(durationSecs) * time.Second
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
