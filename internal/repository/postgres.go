package repository

import (
	"context"
	"fmt"

	"campus-navigator/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx shared by *pgxpool.Pool and *pgx.Conn
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Schema creates the campus tables. Paths keep their insertion order through the serial id.
const Schema = `
	CREATE TABLE IF NOT EXISTS campus_locations (
		name     TEXT PRIMARY KEY,
		category TEXT NOT NULL DEFAULT '',
		x        DOUBLE PRECISION NOT NULL,
		y        DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS campus_paths (
		id        BIGSERIAL PRIMARY KEY,
		from_name TEXT NOT NULL,
		to_name   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS campus_paths_from_idx ON campus_paths (from_name);
`

// Repository reads and writes the campus map in PostgreSQL
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the campus tables if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListLocations returns every stored location ordered by name
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	sql := `
		SELECT name, category, x, y
		FROM campus_locations
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.Name, &loc.Category, &loc.X, &loc.Y); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating locations: %w", err)
	}

	return locations, nil
}

// ListPaths returns every stored path in insertion order
func (r *Repository) ListPaths(ctx context.Context) ([]models.Path, error) {
	rows, err := r.db.Query(ctx, `SELECT from_name, to_name FROM campus_paths ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query paths: %w", err)
	}
	defer rows.Close()

	paths := []models.Path{}
	for rows.Next() {
		var p models.Path
		if err := rows.Scan(&p.From, &p.To); err != nil {
			return nil, fmt.Errorf("repository: failed to scan path: %w", err)
		}
		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating paths: %w", err)
	}

	return paths, nil
}

// InsertLocations upserts locations by name: a name already stored, or repeated
// within the batch, keeps the last record. It returns the number of rows written.
func (r *Repository) InsertLocations(ctx context.Context, locations []models.Location) (int64, error) {
	locations = lastByName(locations)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `CREATE TEMP TABLE campus_locations_staging (LIKE campus_locations INCLUDING DEFAULTS) ON COMMIT DROP`); err != nil {
		return 0, fmt.Errorf("repository: failed to create staging table: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"campus_locations_staging"},
		[]string{"name", "category", "x", "y"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			l := locations[i]
			return []any{l.Name, l.Category, l.X, l.Y}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO campus_locations (name, category, x, y)
		SELECT name, category, x, y FROM campus_locations_staging
		ON CONFLICT (name) DO UPDATE
		SET category = EXCLUDED.category, x = EXCLUDED.x, y = EXCLUDED.y
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to upsert locations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit locations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// lastByName drops earlier records whose name repeats later in the slice.
// ON CONFLICT cannot touch the same row twice in one statement.
func lastByName(locations []models.Location) []models.Location {
	index := make(map[string]int, len(locations))
	out := make([]models.Location, 0, len(locations))
	for _, l := range locations {
		if i, ok := index[l.Name]; ok {
			out[i] = l
			continue
		}
		index[l.Name] = len(out)
		out = append(out, l)
	}
	return out
}

// InsertPaths bulk-loads paths with COPY, preserving slice order
func (r *Repository) InsertPaths(ctx context.Context, paths []models.Path) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"campus_paths"},
		[]string{"from_name", "to_name"},
		pgx.CopyFromSlice(len(paths), func(i int) ([]any, error) {
			return []any{paths[i].From, paths[i].To}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy paths: %w", err)
	}
	return n, nil
}

// CountLocations returns the number of stored locations
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM campus_locations").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return count, nil
}
