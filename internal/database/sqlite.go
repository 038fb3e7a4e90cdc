// internal/database/sqlite.go
package database

import (
	"database/sql"
	"time"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	sqlite := &SQLiteDB{db: db}

	// Create tables
	if err := sqlite.createTables(); err != nil {
		return nil, err
	}

	return sqlite, nil
}

func (s *SQLiteDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		duration_hours REAL NOT NULL,
		distance_km REAL NOT NULL,
		speed_kmh REAL NOT NULL,
		calories REAL NOT NULL,
		source TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_kind ON workouts(kind);
	CREATE INDEX IF NOT EXISTS idx_workouts_created_at ON workouts(created_at);

	CREATE TABLE IF NOT EXISTS processed_files (
		filename TEXT PRIMARY KEY,
		processed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) CreateWorkout(workout *Workout) error {
	query := `
	INSERT INTO workouts (kind, duration_hours, distance_km, speed_kmh, calories, source)
	VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		workout.Kind, workout.DurationHours, workout.DistanceKm,
		workout.SpeedKmh, workout.Calories, workout.Source,
	)

	return err
}

func (s *SQLiteDB) GetWorkouts(limit, offset int) ([]Workout, error) {
	query := `
	SELECT id, kind, duration_hours, distance_km, speed_kmh, calories, source, created_at
	FROM workouts
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		var createdAt string

		err := rows.Scan(
			&w.ID, &w.Kind, &w.DurationHours, &w.DistanceKm,
			&w.SpeedKmh, &w.Calories, &w.Source, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		if w.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt); err != nil {
			return nil, err
		}

		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (s *SQLiteDB) GetStats() (*Stats, error) {
	stats := &Stats{ByKind: make(map[string]int)}

	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(distance_km), 0), COALESCE(SUM(calories), 0) FROM workouts",
	).Scan(&stats.Total, &stats.TotalDistance, &stats.TotalCalories)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT kind, COUNT(*) FROM workouts GROUP BY kind")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		stats.ByKind[kind] = count
	}

	return stats, rows.Err()
}

func (s *SQLiteDB) FileProcessed(filename string) (bool, error) {
	query := `SELECT COUNT(*) FROM processed_files WHERE filename = ?`
	var count int
	err := s.db.QueryRow(query, filename).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLiteDB) MarkFileProcessed(filename string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO processed_files (filename) VALUES (?)`, filename)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
