package main

import (
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens the metrics database and prepares the schema. Metrics are
// best-effort: on failure the server keeps running with tracking disabled.
func initDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "portfolio.db"
	}

	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Printf("Visitor metrics disabled, could not open database: %v", err)
		db = nil
		return
	}

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(createVisitorTable); err != nil {
		log.Printf("Visitor metrics disabled, could not create schema: %v", err)
		db.Close()
		db = nil
		return
	}

	// Clean up old visitor data for privacy compliance (run in background)
	go cleanupOldVisitorData()

	log.Println("Privacy-conscious visitor tracking initialized")
}

// Cleanup old visitor data for privacy compliance
func cleanupOldVisitorData() {
	result, err := db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", rowsDeleted)
	}
}
