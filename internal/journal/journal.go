// Package journal records the lifetime of each seeded board in a local SQLite
// database, one row per epoch, so long-running panels can be reviewed later.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"matrix-life/internal/core"
)

// Epoch summarizes one seeded board from reseed to reseed.
type Epoch struct {
	RunID       string
	Epoch       int
	Foreground  uint32
	Generations int // last generation presented before the reseed
	FinalAlive  int // population of that generation
	EndedAt     time.Time
}

// Journal is a core.Surface that writes an Epoch row whenever a reseeded
// frame arrives.
type Journal struct {
	db     *sql.DB
	runID  string
	logger *log.Logger
	now    func() time.Time

	last    core.Frame
	hasLast bool
}

// Open creates or opens the database at path. A nil logger uses log.Default().
func Open(path string, logger *log.Logger) (*Journal, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}
	return &Journal{db: db, runID: uuid.NewString(), logger: logger, now: time.Now}, nil
}

const schema = `CREATE TABLE IF NOT EXISTS epochs (
	run_id TEXT NOT NULL,
	epoch INTEGER NOT NULL,
	foreground INTEGER NOT NULL,
	generations INTEGER NOT NULL,
	final_alive INTEGER NOT NULL,
	ended_at DATETIME NOT NULL,
	PRIMARY KEY (run_id, epoch)
);`

// RunID identifies this process's rows.
func (j *Journal) RunID() string { return j.runID }

// Present remembers the latest frame and, when f starts a new epoch, records
// the one that just ended.
func (j *Journal) Present(f core.Frame) error {
	defer func() {
		j.last = f
		j.last.Cells = nil
		j.hasLast = true
	}()
	if !f.Reseeded || !j.hasLast {
		return nil
	}
	ended := Epoch{
		RunID:       j.runID,
		Epoch:       j.last.Epoch,
		Foreground:  j.last.Foreground,
		Generations: j.last.Generation,
		FinalAlive:  j.last.Alive,
		EndedAt:     j.now().UTC(),
	}
	_, err := j.db.Exec(
		`INSERT INTO epochs (run_id, epoch, foreground, generations, final_alive, ended_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ended.RunID, ended.Epoch, ended.Foreground, ended.Generations, ended.FinalAlive, ended.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("journal: record epoch %d: %w", ended.Epoch, err)
	}
	j.logger.Printf("journal: epoch %d ended after %s generations with %s cells alive",
		ended.Epoch, humanize.Comma(int64(ended.Generations)), humanize.Comma(int64(ended.FinalAlive)))
	return nil
}

// Epochs lists the rows recorded by this run in epoch order.
func (j *Journal) Epochs(ctx context.Context) ([]Epoch, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT run_id, epoch, foreground, generations, final_alive, ended_at FROM epochs WHERE run_id = ? ORDER BY epoch`,
		j.runID)
	if err != nil {
		return nil, fmt.Errorf("journal: query epochs: %w", err)
	}
	defer rows.Close()

	var out []Epoch
	for rows.Next() {
		var e Epoch
		if err := rows.Scan(&e.RunID, &e.Epoch, &e.Foreground, &e.Generations, &e.FinalAlive, &e.EndedAt); err != nil {
			return nil, fmt.Errorf("journal: scan epoch: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database.
func (j *Journal) Close() error { return j.db.Close() }
