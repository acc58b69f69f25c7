// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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
)

// timeLayout is the format used for created_at columns.
const timeLayout = "2006-01-02 15:04:05"

// DefaultPlayer is recorded when no player name is known.
const DefaultPlayer = "local"

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished round.
type Run struct {
	ID        int64
	RunID     string // Random UUID, stable across exports
	Player    string
	Score     int
	Frames    int
	CreatedAt time.Time
}

// PlayerStats contains aggregated statistics for one player.
type PlayerStats struct {
	Player      string
	Runs        int
	HighScore   int
	AvgScore    float64
	TotalFrames int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
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

// SaveRun records a finished round and returns it with its identifiers set.
func (s *Store) SaveRun(player string, score, frames int) (Run, error) {
	if player == "" {
		player = DefaultPlayer
	}
	run := Run{
		RunID:     uuid.NewString(),
		Player:    player,
		Score:     score,
		Frames:    frames,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, player, score, frames, created_at) VALUES (?, ?, ?, ?, ?)",
		run.RunID, run.Player, run.Score, run.Frames, run.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	run.ID, err = result.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return run, nil
}

// TopScores retrieves the top N runs across all players.
// Results are ordered by score descending, earliest first on ties.
func (s *Store) TopScores(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, player, score, frames, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// TopScoresForPlayer retrieves the top N runs of one player.
func (s *Store) TopScoresForPlayer(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, player, score, frames, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		player, limit,
	)
}

// RunByID retrieves a run by its UUID. Returns nil if it doesn't exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT id, run_id, player, score, frames, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Player, &r.Score, &r.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score of any player.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	return s.maxScore("SELECT MAX(score) FROM runs")
}

// PlayerHighScore returns the highest score of one player.
func (s *Store) PlayerHighScore(player string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM runs WHERE player = ?", player)
}

func (s *Store) maxScore(query string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PlayerStats retrieves aggregated statistics for one player.
func (s *Store) PlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(frames), 0)
		 FROM runs WHERE player = ?`,
		player,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalFrames)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		player,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllPlayerStats retrieves statistics for every player, best first.
func (s *Store) AllPlayerStats() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT player, COUNT(*), MAX(score), AVG(score), SUM(frames), MAX(created_at)
		 FROM runs
		 GROUP BY player
		 ORDER BY MAX(score) DESC, player ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	var all []PlayerStats
	for rows.Next() {
		var ps PlayerStats
		var lastPlayed any
		if err := rows.Scan(&ps.Player, &ps.Runs, &ps.HighScore, &ps.AvgScore, &ps.TotalFrames, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		all = append(all, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// ClearScores deletes every run. An empty player clears all players.
func (s *Store) ClearScores(player string) error {
	var err error
	if player == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE player = ?", player)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
