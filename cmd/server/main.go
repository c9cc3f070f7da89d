package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	emailPkg "lifeboard/internal/adapters/email"
	web "lifeboard/internal/adapters/http"
	"lifeboard/internal/adapters/http/perf"
	"lifeboard/internal/adapters/storage"
	accountStore "lifeboard/internal/adapters/storage/account"
	contentStore "lifeboard/internal/adapters/storage/content"
	exerciseStore "lifeboard/internal/adapters/storage/exercise"
	habitStore "lifeboard/internal/adapters/storage/habit"
	healthMetricStore "lifeboard/internal/adapters/storage/healthmetric"
	scriptStore "lifeboard/internal/adapters/storage/script"
	taskStore "lifeboard/internal/adapters/storage/task"
	weeklyPlanStore "lifeboard/internal/adapters/storage/weeklyplan"
	workoutStore "lifeboard/internal/adapters/storage/workout"
	"lifeboard/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode, foreign keys, and a busy timeout so concurrent handlers
	// don't surface SQLITE_BUSY
	dbPath := envOrDefault("LIFEBOARD_DB", "lifeboard.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
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

	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:      acctStore,
		TaskStore:         taskStore.NewSQLiteStore(timedDB),
		HabitStore:        habitStore.NewSQLiteStore(timedDB),
		HealthMetricStore: healthMetricStore.NewSQLiteStore(timedDB),
		ExerciseStore:     exerciseStore.NewSQLiteStore(timedDB),
		WorkoutStore:      workoutStore.NewSQLiteStore(timedDB),
		WeeklyPlanStore:   weeklyPlanStore.NewSQLiteStore(timedDB),
		ContentStore:      contentStore.NewSQLiteStore(timedDB),
		ScriptStore:       scriptStore.NewSQLiteStore(timedDB),
	}

	// Seed the owner account on first boot. Credentials come from the
	// environment so the database never ships with a default password.
	seedInput := orchestrators.SeedOwnerInput{
		Email:    os.Getenv("LIFEBOARD_OWNER_EMAIL"),
		Password: os.Getenv("LIFEBOARD_OWNER_PASSWORD"),
	}
	seedDeps := orchestrators.SeedOwnerDeps{
		AccountStore: acctStore,
		GenerateID:   func() string { return uuid.New().String() },
	}
	if err := orchestrators.ExecuteSeedOwner(context.Background(), seedInput, seedDeps); err != nil {
		log.Fatalf("failed to seed owner account: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("LIFEBOARD_RESEND_KEY")
	emailFrom := envOrDefault("LIFEBOARD_EMAIL_FROM", "Lifeboard <noreply@lifeboard.app>")
	emailReply := envOrDefault("LIFEBOARD_REPLY_TO", "")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("LIFEBOARD_ENV") == "production" {
			log.Println("WARNING: LIFEBOARD_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set LIFEBOARD_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(envOrDefault("LIFEBOARD_STATIC", "static"), stores, collector)

	addr := envOrDefault("LIFEBOARD_ADDR", ":8080")
	log.Printf("Lifeboard %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("LIFEBOARD_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
