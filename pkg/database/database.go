// Package database persists completed turns to a local SQLite file. The log
// is append-only and independent from the in-memory context window: the
// window caps at five turns, the database keeps everything.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"lyra/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ts DATETIME NOT NULL,
	user_text TEXT NOT NULL,
	reply TEXT NOT NULL,
	intent TEXT NOT NULL,
	sentiment TEXT NOT NULL,
	lang TEXT NOT NULL
);`

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	log.Printf("DATABASE: opened %s", path)
	return &DB{conn: conn}, nil
}

func (d *DB) LogTurn(t models.Turn) error {
	ts := t.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := d.conn.Exec(
		`INSERT INTO turns (ts, user_text, reply, intent, sentiment, lang) VALUES (?, ?, ?, ?, ?, ?)`,
		ts, t.UserText, t.Reply, string(t.Intent), string(t.Sentiment), t.Language,
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}

// RecentTurns returns up to limit turns, newest first.
func (d *DB) RecentTurns(limit int) ([]models.Turn, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(
		`SELECT ts, user_text, reply, intent, sentiment, lang FROM turns ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []models.Turn
	for rows.Next() {
		var t models.Turn
		var intentStr, sentimentStr string
		if err := rows.Scan(&t.Timestamp, &t.UserText, &t.Reply, &intentStr, &sentimentStr, &t.Language); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.Intent = models.Intent(intentStr)
		t.Sentiment = models.Sentiment(sentimentStr)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (d *DB) Close() error {
	return d.conn.Close()
}
