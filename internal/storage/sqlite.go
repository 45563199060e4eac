// Package storage provides persistence for MouseTrap progress: a single-file
// YAML store and a SQLite store with per-player slots and result history.
// The SQLite store uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// DefaultSlot is the slot used by local play.
const DefaultSlot = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished game.
type ResultEntry struct {
	ID        int64
	Slot      string
	Level     int
	Outcome   core.Outcome
	Turns     int
	CreatedAt time.Time
}

// LevelStats aggregates the results of one level in one slot.
type LevelStats struct {
	Level      int
	Plays      int
	Wins       int
	BestTurns  int // Fewest turns in a won game, 0 if never won
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite has a single writer; one connection keeps SSH sessions from hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS progress (
			slot TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS progress_levels (
			slot TEXT NOT NULL,
			seq INTEGER NOT NULL,
			level INTEGER NOT NULL,
			PRIMARY KEY (slot, seq)
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			turns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_slot_level ON results(slot, level);
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

// Slot returns the progress store of one player slot.
func (s *Store) Slot(name string) *SlotStore {
	if name == "" {
		name = DefaultSlot
	}
	return &SlotStore{store: s, slot: name}
}

// Slots returns the names of all slots with saved progress.
func (s *Store) Slots() ([]string, error) {
	rows, err := s.db.Query("SELECT slot FROM progress ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		slots = append(slots, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return slots, nil
}

// SlotStore is the progress and result history of one player.
// It implements core.ProgressStore and core.ResultRecorder.
type SlotStore struct {
	store *Store
	slot  string
}

// Name returns the slot name.
func (s *SlotStore) Name() string {
	return s.slot
}

// Load returns the slot's save record. A slot without progress yields an empty record.
func (s *SlotStore) Load() (core.SaveRecord, error) {
	var version int
	err := s.store.db.QueryRow("SELECT version FROM progress WHERE slot = ?", s.slot).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return core.SaveRecord{}, nil
	}
	if err != nil {
		return core.SaveRecord{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	if version != SaveVersion {
		return core.SaveRecord{}, fmt.Errorf("%w: %d in slot %q", ErrUnsupportedVersion, version, s.slot)
	}

	rows, err := s.store.db.Query(
		"SELECT level FROM progress_levels WHERE slot = ? ORDER BY seq",
		s.slot,
	)
	if err != nil {
		return core.SaveRecord{}, fmt.Errorf("storage: cannot query progress levels: %w", err)
	}
	defer rows.Close()

	var record core.SaveRecord
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return core.SaveRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		record.LevelsCompleted = append(record.LevelsCompleted, level)
	}
	if err := rows.Err(); err != nil {
		return core.SaveRecord{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return record, nil
}

// Save overwrites the slot's save record in a single transaction.
func (s *SlotStore) Save(r core.SaveRecord) (err error) {
	tx, err := s.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(
		`INSERT INTO progress (slot, version, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET version = excluded.version, updated_at = excluded.updated_at`,
		s.slot, SaveVersion,
	); err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	if _, err = tx.Exec("DELETE FROM progress_levels WHERE slot = ?", s.slot); err != nil {
		return fmt.Errorf("storage: cannot clear progress levels: %w", err)
	}
	for seq, level := range r.LevelsCompleted {
		if _, err = tx.Exec(
			"INSERT INTO progress_levels (slot, seq, level) VALUES (?, ?, ?)",
			s.slot, seq, level,
		); err != nil {
			return fmt.Errorf("storage: cannot save progress level: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// RecordResult appends a finished game to the slot's history.
func (s *SlotStore) RecordResult(res core.Result) error {
	_, err := s.store.db.Exec(
		"INSERT INTO results (slot, level, outcome, turns) VALUES (?, ?, ?, ?)",
		s.slot, res.Level, string(res.Outcome), res.Turns,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// RecentResults returns the slot's latest results, newest first.
func (s *SlotStore) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.store.db.Query(
		`SELECT id, slot, level, outcome, turns, created_at
		 FROM results
		 WHERE slot = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		s.slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var outcome string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Slot, &e.Level, &outcome, &e.Turns, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = core.Outcome(outcome)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LevelStats returns per-level aggregates for the slot, ordered by level.
func (s *SlotStore) LevelStats() ([]LevelStats, error) {
	rows, err := s.store.db.Query(
		`SELECT level,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN turns END), 0),
		        MAX(created_at)
		 FROM results
		 WHERE slot = ?
		 GROUP BY level
		 ORDER BY level`,
		string(core.OutcomePlayerWon), string(core.OutcomePlayerWon), s.slot,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.Level, &st.Plays, &st.Wins, &st.BestTurns, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Clear deletes the slot's progress and results.
func (s *SlotStore) Clear() error {
	for _, q := range []string{
		"DELETE FROM progress_levels WHERE slot = ?",
		"DELETE FROM progress WHERE slot = ?",
		"DELETE FROM results WHERE slot = ?",
	} {
		if _, err := s.store.db.Exec(q, s.slot); err != nil {
			return fmt.Errorf("storage: cannot clear slot %q: %w", s.slot, err)
		}
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite returns for DATETIME.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var (
	_ core.ProgressStore  = (*SlotStore)(nil)
	_ core.ResultRecorder = (*SlotStore)(nil)
)
