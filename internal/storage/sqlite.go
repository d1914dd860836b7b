// Package storage persists run scores and level generation reports in SQLite.
// It uses the pure-Go modernc.org/sqlite driver so builds stay CGO-free.
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

const sqliteTime = "2006-01-02 15:04:05"

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int // Level reached
	Seed      int64
	CreatedAt time.Time
}

// LevelReport records how a generated level turned out. Reports make it
// possible to find seeds where bridging hit its cap or spawning came up short.
type LevelReport struct {
	ID                    string
	Seed                  int64
	Level                 int
	Theme                 string
	Platforms             int
	Bridges               int
	CapHit                bool
	EnemiesRequested      int
	EnemiesSpawned        int
	CollectiblesRequested int
	CollectiblesSpawned   int
	CreatedAt             time.Time
}

// Open creates or opens the database at dbPath, creating parent directories
// and running migrations. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_reports (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			level INTEGER NOT NULL,
			theme TEXT NOT NULL,
			platforms INTEGER NOT NULL,
			bridges INTEGER NOT NULL,
			cap_hit INTEGER NOT NULL DEFAULT 0,
			enemies_requested INTEGER NOT NULL,
			enemies_spawned INTEGER NOT NULL,
			collectibles_requested INTEGER NOT NULL,
			collectibles_spawned INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_reports_cap ON level_reports(cap_hit);
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

// SaveScore records a finished run and returns its row ID.
func (s *Store) SaveScore(gameID string, score, level int, seed int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, level, seed) VALUES (?, ?, ?, ?)",
		gameID, score, level, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores for gameID, highest first.
// A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, seed, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Level, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score for gameID, or 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes every score for gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates the runs of one game.
type Stats struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// GameStats aggregates all scores for gameID. A game with no runs returns
// zero stats and no error.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// SaveLevelReport stores r and returns its ID. An empty ID is filled with a
// fresh UUID.
func (s *Store) SaveLevelReport(r LevelReport) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO level_reports
		 (id, seed, level, theme, platforms, bridges, cap_hit,
		  enemies_requested, enemies_spawned, collectibles_requested, collectibles_spawned)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Seed, r.Level, r.Theme, r.Platforms, r.Bridges, r.CapHit,
		r.EnemiesRequested, r.EnemiesSpawned, r.CollectiblesRequested, r.CollectiblesSpawned,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save level report: %w", err)
	}
	return r.ID, nil
}

// LevelReportByID returns the report with the given ID, or nil when missing.
func (s *Store) LevelReportByID(id string) (*LevelReport, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, level, theme, platforms, bridges, cap_hit,
		        enemies_requested, enemies_spawned, collectibles_requested, collectibles_spawned, created_at
		 FROM level_reports WHERE id = ?`,
		id,
	)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level report: %w", err)
	}
	return r, nil
}

// CapHitReports returns the most recent reports whose bridging stopped at the
// cap, newest first.
func (s *Store) CapHitReports(limit int) ([]LevelReport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, seed, level, theme, platforms, bridges, cap_hit,
		        enemies_requested, enemies_spawned, collectibles_requested, collectibles_spawned, created_at
		 FROM level_reports
		 WHERE cap_hit = 1
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level reports: %w", err)
	}
	defer rows.Close()

	var out []LevelReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (*LevelReport, error) {
	var r LevelReport
	var createdAt any
	err := sc.Scan(&r.ID, &r.Seed, &r.Level, &r.Theme, &r.Platforms, &r.Bridges, &r.CapHit,
		&r.EnemiesRequested, &r.EnemiesSpawned, &r.CollectiblesRequested, &r.CollectiblesSpawned, &createdAt)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
