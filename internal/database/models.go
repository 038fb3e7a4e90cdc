// internal/database/models.go
package database

import "time"

type Workout struct {
	ID            int       `json:"id"`
	Kind          string    `json:"kind"`
	DurationHours float64   `json:"duration_hours"`
	DistanceKm    float64   `json:"distance_km"`
	SpeedKmh      float64   `json:"mean_speed_kmh"`
	Calories      float64   `json:"calories"`
	Source        string    `json:"source"` // packet file the workout came from, "" for built-in
	CreatedAt     time.Time `json:"created_at"`
}

type Stats struct {
	Total         int            `json:"total"`
	TotalDistance float64        `json:"total_distance_km"`
	TotalCalories float64        `json:"total_calories"`
	ByKind        map[string]int `json:"by_kind"`
}

// Database interface
type Database interface {
	CreateWorkout(workout *Workout) error
	GetWorkouts(limit, offset int) ([]Workout, error)

	GetStats() (*Stats, error)

	// Watch-mode bookkeeping
	FileProcessed(filename string) (bool, error)
	MarkFileProcessed(filename string) error

	Close() error
}
