// main.go - Entry point and dependency injection
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sstent/fittrack-go/internal/database"
	"github.com/sstent/fittrack-go/internal/packet"
	"github.com/sstent/fittrack-go/internal/parser"
	"github.com/sstent/fittrack-go/internal/sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/robfig/cron/v3"
)

// Demo packets processed when no files are given: the built-in sensor
// readouts the tracker ships with.
var demoPackets = []packet.Packet{
	{Type: packet.CodeSwimming, Data: []any{720, 1, 80, 25, 40}},
	{Type: packet.CodeRunning, Data: []any{15000, 1, 75}},
	{Type: packet.CodeWalking, Data: []any{9000, 1, 75, 180}},
}

type App struct {
	db       *database.SQLiteDB
	cron     *cron.Cron
	syncer   *sync.Service
	shutdown chan os.Signal
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app := &App{
		shutdown: make(chan os.Signal, 1),
	}

	if err := app.init(); err != nil {
		log.Fatal("Failed to initialize app:", err)
	}
	defer app.close()

	switch {
	case os.Getenv("WATCH_DIR") != "":
		app.watch()
	case len(os.Args) > 1:
		// Process the given packet files once
		for _, filename := range os.Args[1:] {
			if err := app.syncer.ProcessFile(filename); err != nil {
				app.close()
				log.Fatalf("Failed to process %s: %v", filename, err)
			}
		}
	default:
		// Built-in demo readouts
		for _, pkt := range demoPackets {
			if err := app.syncer.Process(pkt, ""); err != nil {
				app.close()
				log.Fatalf("Failed to process %s packet: %v", pkt.Type, err)
			}
		}
	}
}

func (app *App) init() error {
	// Optional workout history
	if dbPath := databasePath(); dbPath != "" {
		db, err := database.NewSQLiteDB(dbPath)
		if err != nil {
			return err
		}
		app.db = db
	}

	profile := parser.AthleteProfile{
		WeightKg: envFloat("ATHLETE_WEIGHT_KG", 75),
		HeightCm: envFloat("ATHLETE_HEIGHT_CM", 175),
	}
	app.syncer = sync.NewService(app.db, profile, os.Getenv("WATCH_DIR"))

	return nil
}

// watch periodically re-scans WATCH_DIR for new packet files until the
// process is signalled to stop.
func (app *App) watch() {
	schedule := os.Getenv("WATCH_SCHEDULE")
	if schedule == "" {
		schedule = "@hourly"
	}

	app.cron = cron.New()
	if _, err := app.cron.AddFunc(schedule, func() {
		log.Println("Starting scheduled scan...")
		if err := app.syncer.Run(context.Background()); err != nil {
			log.Printf("Scan failed: %v", err)
		}
	}); err != nil {
		log.Printf("Invalid WATCH_SCHEDULE %q, running startup scan only: %v", schedule, err)
	}

	// First pass immediately, then on schedule
	if err := app.syncer.Run(context.Background()); err != nil {
		log.Printf("Scan failed: %v", err)
	}
	app.cron.Start()

	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	log.Println("Shutting down...")
	app.cron.Stop()
	log.Println("Shutdown complete")
}

func (app *App) close() {
	if app.db != nil {
		app.db.Close()
	}
}

// databasePath resolves the history location: DB_PATH wins, otherwise
// DATA_DIR/fittrack.db when DATA_DIR is set, otherwise no history.
func databasePath() string {
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		return dbPath
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		return ""
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Printf("Failed to create data directory: %v", err)
		return ""
	}
	return filepath.Join(dataDir, "fittrack.db")
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, raw, fallback)
		return fallback
	}
	return v
}
