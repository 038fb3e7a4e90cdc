// internal/sync/sync.go
package sync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sstent/fittrack-go/internal/database"
	"github.com/sstent/fittrack-go/internal/packet"
	"github.com/sstent/fittrack-go/internal/parser"
)

// Service processes sensor packet files dropped into a data directory:
// parse, decode, compute, print, record. The database is optional; with
// a nil store nothing is persisted and every file is processed again.
type Service struct {
	db      *database.SQLiteDB
	profile parser.AthleteProfile
	dataDir string
}

func NewService(db *database.SQLiteDB, profile parser.AthleteProfile, dataDir string) *Service {
	return &Service{
		db:      db,
		profile: profile,
		dataDir: dataDir,
	}
}

// Run processes every unprocessed packet file in the data directory.
func (s *Service) Run(ctx context.Context) error {
	startTime := time.Now()
	fmt.Printf("Starting scan of %s at %s\n", s.dataDir, startTime.Format(time.RFC3339))
	defer func() {
		fmt.Printf("Scan completed in %s\n", time.Since(startTime))
	}()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return fmt.Errorf("failed to read data directory: %w", err)
	}

	var failed int
	for i, entry := range entries {
		if entry.IsDir() {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := entry.Name()
		if s.db != nil {
			done, err := s.db.FileProcessed(name)
			if err != nil {
				return err
			}
			if done {
				continue
			}
		}

		fmt.Printf("[%d/%d] Processing %s...\n", i+1, len(entries), name)
		if err := s.ProcessFile(filepath.Join(s.dataDir, name)); err != nil {
			fmt.Printf("Error processing %s: %v\n", name, err)
			failed++
			continue
		}

		if s.db != nil {
			if err := s.db.MarkFileProcessed(name); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d packet file(s) failed", failed)
	}
	return nil
}

// ProcessFile parses one packet file and prints a summary line per
// packet. Any malformed packet aborts the file.
func (s *Service) ProcessFile(filename string) error {
	p, err := parser.NewParser(filename, s.profile)
	if err != nil {
		return err
	}

	packets, err := p.ParseFile(filename)
	if err != nil {
		return err
	}

	for _, pkt := range packets {
		if err := s.Process(pkt, filepath.Base(filename)); err != nil {
			return err
		}
	}

	return nil
}

// Process decodes one packet, prints its summary and records it.
func (s *Service) Process(pkt packet.Packet, source string) error {
	reading, err := pkt.Decode()
	if err != nil {
		return err
	}

	report := reading.Summarize()
	fmt.Println(report.Message())

	if s.db == nil {
		return nil
	}
	return s.db.CreateWorkout(&database.Workout{
		Kind:          report.Kind,
		DurationHours: report.Duration,
		DistanceKm:    report.Distance,
		SpeedKmh:      report.Speed,
		Calories:      report.Calories,
		Source:        source,
	})
}
