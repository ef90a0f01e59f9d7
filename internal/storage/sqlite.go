// Package storage provides SQLite-based persistence for game replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is one stored game: everything needed to re-simulate it.
// Scores are not stored; they are recomputed by replaying the commands.
type ReplayEntry struct {
	ID            int64
	GameID        string
	Randomizer    string
	Seed          int64
	PointsPerLine int
	Commands      string
	CreatedAt     time.Time
}

// Journal decodes the entry back into a replayable journal.
func (e ReplayEntry) Journal() (tetris.Journal, error) {
	cmds, err := tetris.ParseCommands(e.Commands)
	if err != nil {
		return tetris.Journal{}, fmt.Errorf("storage: replay %d: %w", e.ID, err)
	}
	return tetris.Journal{
		GameID:        e.GameID,
		Randomizer:    e.Randomizer,
		Seed:          e.Seed,
		PointsPerLine: e.PointsPerLine,
		Commands:      cmds,
	}, nil
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			randomizer TEXT NOT NULL,
			seed INTEGER NOT NULL,
			points_per_line INTEGER NOT NULL,
			commands TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
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

// SaveJournal records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveJournal(j tetris.Journal) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays (game_id, randomizer, seed, points_per_line, commands)
		 VALUES (?, ?, ?, ?, ?)`,
		j.GameID, j.Randomizer, j.Seed, j.PointsPerLine, j.EncodeCommands(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

var _ tetris.JournalSaver = (*Store)(nil)

// Replay retrieves a replay by ID. Returns nil if it does not exist.
func (s *Store) Replay(id int64) (*ReplayEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, randomizer, seed, points_per_line, commands, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	e, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	return &e, nil
}

// RecentReplays retrieves the most recent replays, newest first.
// An empty gameID matches every mode.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, randomizer, seed, points_per_line, commands, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		e, err := scanReplay(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearReplays deletes all replays for the given mode, or every replay
// if gameID is empty.
func (s *Store) ClearReplays(gameID string) error {
	var err error
	if gameID == "" {
		_, err = s.db.Exec("DELETE FROM replays")
	} else {
		_, err = s.db.Exec("DELETE FROM replays WHERE game_id = ?", gameID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(sc scanner) (ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any
	if err := sc.Scan(&e.ID, &e.GameID, &e.Randomizer, &e.Seed, &e.PointsPerLine, &e.Commands, &createdAt); err != nil {
		return e, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
