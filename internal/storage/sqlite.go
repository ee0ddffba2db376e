// Package storage provides the SQLite play journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal is write-mostly analytics: the kiosk records what visitors
// did, but never reads it back to restore a session.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Kind classifies a journal entry.
type Kind string

const (
	KindEntered   Kind = "entered"    // A game was opened from the menu
	KindProgress  Kind = "progress"   // A stage or constellation was cleared
	KindCompleted Kind = "completed"  // The game reached its final screen
	KindRevealed  Kind = "revealed"   // The wheel revealed a fortune
	KindLeft      Kind = "left"       // The visitor went back to the menu
	KindIdleReset Kind = "idle_reset" // The inactivity timeout ended the visit
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Entry is one journal record.
type Entry struct {
	ID        int64
	VisitID   string
	GameID    string
	Kind      Kind
	Detail    string
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	Visits      int
	Completions int
	Reveals     int
	IdleResets  int
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
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visit_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_game_id ON journal(game_id);
		CREATE INDEX IF NOT EXISTS idx_journal_visit_id ON journal(visit_id);
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

// Record appends an entry to the journal.
// Returns the ID of the inserted record.
func (s *Store) Record(e Entry) (int64, error) {
	if e.VisitID == "" || e.GameID == "" || e.Kind == "" {
		return 0, fmt.Errorf("storage: entry needs visit, game and kind: %+v", e)
	}

	result, err := s.db.Exec(
		"INSERT INTO journal (visit_id, game_id, kind, detail) VALUES (?, ?, ?, ?)",
		e.VisitID, e.GameID, string(e.Kind), e.Detail,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the latest entries across all games, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, visit_id, game_id, kind, detail, created_at
		 FROM journal
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// ForGame retrieves the latest entries for one game, newest first.
func (s *Store) ForGame(gameID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, visit_id, game_id, kind, detail, created_at
		 FROM journal
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// Visit retrieves every entry of one visit in the order they happened.
func (s *Store) Visit(visitID string) ([]Entry, error) {
	return s.query(
		`SELECT id, visit_id, game_id, kind, detail, created_at
		 FROM journal
		 WHERE visit_id = ?
		 ORDER BY id ASC`,
		visitID,
	)
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.VisitID, &e.GameID, &kind, &e.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Kind = Kind(kind)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// FortuneCounts returns how often each fortune has been revealed.
func (s *Store) FortuneCounts() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT detail, COUNT(*) FROM journal WHERE kind = ? GROUP BY detail`,
		string(KindRevealed),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count fortunes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var detail string
		var n int
		if err := rows.Scan(&detail, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[detail] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
// A game that was never played returns zero counts.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.GetAllGamesStats()
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id,
		        SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END),
		        MAX(created_at)
		 FROM journal
		 GROUP BY game_id`,
		string(KindEntered), string(KindCompleted), string(KindRevealed), string(KindIdleReset),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.Visits, &st.Completions, &st.Reveals, &st.IdleResets, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Clear deletes the journal for one game, or everything when gameID is empty.
func (s *Store) Clear(gameID string) error {
	var err error
	if gameID == "" {
		_, err = s.db.Exec("DELETE FROM journal")
	} else {
		_, err = s.db.Exec("DELETE FROM journal WHERE game_id = ?", gameID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
}

// parseTime handles the datetime as either time.Time or string,
// depending on how the driver returns the column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
