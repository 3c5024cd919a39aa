// Package catalog stores inspection results in SQLite so the dimensions of
// previously uploaded models can be looked up without parsing them again
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

// timeLayout sorts lexically in the same order as the times it encodes
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotParsed is returned when saving a result whose parse failed
var ErrNotParsed = errors.New("cannot store a failed inspection")

// Catalog is a SQLite-backed history of inspected models
type Catalog struct {
	db     *sql.DB
	dbPath string
}

// Record is one stored inspection
type Record struct {
	ID          int64
	Path        string
	Format      string
	Size        int64
	Vertices    int
	Min         geometry.Vector3
	Max         geometry.Vector3
	Average     geometry.Vector3
	Width       float64
	Depth       float64
	Height      float64
	InspectedAt time.Time
}

// Open opens or creates the catalog database, creating parent directories
// as needed
func Open(dbPath string) (*Catalog, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	c := &Catalog{db: db, dbPath: dbPath}
	if err := c.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return c, nil
}

// Path returns the database file location
func (c *Catalog) Path() string {
	return c.dbPath
}

// Close closes the database connection
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS inspections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		format TEXT NOT NULL,
		size INTEGER NOT NULL,
		vertices INTEGER NOT NULL,
		min_x REAL, min_y REAL, min_z REAL,
		max_x REAL, max_y REAL, max_z REAL,
		avg_x REAL, avg_y REAL, avg_z REAL,
		width REAL NOT NULL,
		depth REAL NOT NULL,
		height REAL NOT NULL,
		inspected_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_inspections_path ON inspections(path);
	`

	_, err := c.db.ExecContext(ctx, schema)
	return err
}

// Save stores a successful inspection and returns its row ID
func (c *Catalog) Save(ctx context.Context, r *inspect.Result) (int64, error) {
	if !r.OK() {
		return 0, fmt.Errorf("%w: %s", ErrNotParsed, r.Path)
	}

	absPath, err := filepath.Abs(r.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve path %s: %w", r.Path, err)
	}

	s := r.Summary
	res, err := c.db.ExecContext(ctx, `
	INSERT INTO inspections (path, format, size, vertices,
		min_x, min_y, min_z, max_x, max_y, max_z, avg_x, avg_y, avg_z,
		width, depth, height, inspected_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		absPath, s.Format, r.Size, s.VertexCount,
		s.Min.X, s.Min.Y, s.Min.Z,
		s.Max.X, s.Max.Y, s.Max.Z,
		s.Average.X, s.Average.Y, s.Average.Z,
		s.Width, s.Depth, s.Height,
		r.InspectedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inspection: %w", err)
	}

	return res.LastInsertId()
}

// History returns the most recent inspections of a file, newest first. A
// limit of zero returns all of them
func (c *Catalog) History(ctx context.Context, path string, limit int) ([]Record, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := c.db.QueryContext(ctx, `
	SELECT id, path, format, size, vertices,
		min_x, min_y, min_z, max_x, max_y, max_z, avg_x, avg_y, avg_z,
		width, depth, height, inspected_at
	FROM inspections
	WHERE path = ?
	ORDER BY inspected_at DESC, id DESC
	LIMIT ?`, absPath, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec         Record
			inspectedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Path, &rec.Format, &rec.Size, &rec.Vertices,
			&rec.Min.X, &rec.Min.Y, &rec.Min.Z,
			&rec.Max.X, &rec.Max.Y, &rec.Max.Z,
			&rec.Average.X, &rec.Average.Y, &rec.Average.Z,
			&rec.Width, &rec.Depth, &rec.Height,
			&inspectedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		if rec.InspectedAt, err = time.Parse(timeLayout, inspectedAt); err != nil {
			return nil, fmt.Errorf("invalid timestamp %q in row %d: %w", inspectedAt, rec.ID, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
