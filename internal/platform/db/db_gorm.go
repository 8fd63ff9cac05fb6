package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookkeeping_backend/internal/feature/ledger/adapters"
)

// OpenDB connects to Postgres when DATABASE_URL is set, otherwise to a local
// SQLite file (DB_PATH, default bookkeeping.db). The connection is retried
// for up to 60 seconds so the server survives a database that is still
// starting up.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	open := func() (*gorm.DB, error) {
		if dsn != "" {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "bookkeeping.db"
		}
		return gorm.Open(gsqlite.Open(path), &gorm.Config{})
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = open()
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&adapters.UserModel{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
