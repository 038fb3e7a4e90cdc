package sync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sstent/fittrack-go/internal/database"
	"github.com/sstent/fittrack-go/internal/packet"
	"github.com/sstent/fittrack-go/internal/parser"
)

const demoCSV = `SWM,720,1,80,25,40
RUN,15000,1,75
WLK,9000,1,75,180
`

var testProfile = parser.AthleteProfile{WeightKg: 75, HeightCm: 175}

func TestProcessFileWithoutStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packets.csv")
	require.NoError(t, os.WriteFile(path, []byte(demoCSV), 0644))

	svc := NewService(nil, testProfile, dir)
	assert.NoError(t, svc.ProcessFile(path))
}

func TestProcessFileAbortsOnBadPacket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packets.csv")
	require.NoError(t, os.WriteFile(path, []byte("BIKE,1,2,3\n"), 0644))

	svc := NewService(nil, testProfile, dir)
	assert.ErrorIs(t, svc.ProcessFile(path), packet.ErrUnknownWorkoutKind)
}

func TestProcessRecordsWorkout(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(db, testProfile, "")

	pkt := packet.Packet{Type: packet.CodeRunning, Data: []any{15000, 1, 75}}
	require.NoError(t, svc.Process(pkt, "morning.csv"))

	workouts, err := db.GetWorkouts(10, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	assert.Equal(t, "Running", workouts[0].Kind)
	assert.Equal(t, "morning.csv", workouts[0].Source)
	assert.InDelta(t, 9.75, workouts[0].DistanceKm, 0.0005)
	assert.InDelta(t, 797.805, workouts[0].Calories, 0.0005)
}

func TestRunSkipsProcessedFiles(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "monday.csv"), []byte(demoCSV), 0644))

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(db, testProfile, dataDir)

	require.NoError(t, svc.Run(context.Background()))

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)

	// Second scan must not re-ingest the same file
	require.NoError(t, svc.Run(context.Background()))

	stats, err = db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}

func TestRunReportsFailedFiles(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "bad.csv"), []byte("RUN,1,2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "good.csv"), []byte("RUN,15000,1,75\n"), 0644))

	svc := NewService(nil, testProfile, dataDir)
	assert.Error(t, svc.Run(context.Background()))
}

func TestRunCancelled(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "monday.csv"), []byte(demoCSV), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(nil, testProfile, dataDir)
	assert.ErrorIs(t, svc.Run(ctx), context.Canceled)
}
