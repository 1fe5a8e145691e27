// Package database owns the SQLite connection lifecycle: opening the
// store, creating the schema, and seeding sample data on first run.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS sweets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

// Open connects to the SQLite database at path and creates the sweets
// table if it does not exist. The caller owns the returned handle and
// closes it on shutdown.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createTableQuery); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sweets table: %w", err)
	}
	return db, nil
}

// sampleSweets are inserted on first startup so the shop opens with
// stock on the shelves.
var sampleSweets = []struct {
	name     string
	category string
	price    float64
	quantity int
}{
	{"Kaju Katli", "Nut-Based", 50, 20},
	{"Gajar Halwa", "Vegetable-Based", 30, 15},
	{"Gulab Jamun", "Milk-Based", 10, 50},
	{"Rasgulla", "Milk-Based", 15, 30},
	{"Barfi", "Nut-Based", 45, 25},
}

// Seed inserts the sample sweets when the table is empty. Calling it
// against a populated table is a no-op.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sweets").Scan(&count); err != nil {
		return fmt.Errorf("counting sweets: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range sampleSweets {
		_, err := db.Exec(
			"INSERT INTO sweets (name, category, price, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			s.name, s.category, s.price, s.quantity, now, now,
		)
		if err != nil {
			return fmt.Errorf("seeding sweets: %w", err)
		}
	}

	log.Println("Sample sweets inserted successfully.")
	return nil
}
