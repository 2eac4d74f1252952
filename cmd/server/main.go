package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	web "workoutapi/internal/adapters/http"
	"workoutapi/internal/adapters/http/perf"
	"workoutapi/internal/adapters/storage"
	athleteStore "workoutapi/internal/adapters/storage/athlete"
	categoryStore "workoutapi/internal/adapters/storage/category"
	trainingCenterStore "workoutapi/internal/adapters/storage/trainingcenter"
	"workoutapi/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// WAL mode, busy timeout and foreign key enforcement. The foreign keys
	// are the restrict policy for deleting referenced categories/centers.
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	stores := &web.Stores{
		CategoryStore:       categoryStore.NewSQLiteStore(timedDB),
		TrainingCenterStore: trainingCenterStore.NewSQLiteStore(timedDB),
		AthleteStore:        athleteStore.NewSQLiteStore(timedDB),
	}

	web.MaxPageLimit = cfg.MaxPageLimit
	web.RateLimitPerSecond = cfg.RateLimitPerSecond
	web.RateLimitBurst = cfg.RateLimitBurst
	mux := web.NewMux(stores, collector)

	log.Printf("workout-api %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
