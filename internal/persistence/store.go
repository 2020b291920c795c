// Package persistence provides SQLite-backed storage for settlement
// records. The inference core never calls this directly; hosts wire it in
// to carry settlements across restarts.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

// ErrNotFound is returned when no settlement matches a lookup.
var ErrNotFound = errors.New("settlement not found")

// Store wraps a SQLite connection for settlement persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settlements (
		id TEXT PRIMARY KEY,
		world TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		anchor_x INTEGER NOT NULL,
		anchor_y INTEGER NOT NULL,
		anchor_z INTEGER NOT NULL,
		has_bounds INTEGER NOT NULL DEFAULT 0,
		min_x INTEGER NOT NULL DEFAULT 0,
		min_y INTEGER NOT NULL DEFAULT 0,
		min_z INTEGER NOT NULL DEFAULT 0,
		max_x INTEGER NOT NULL DEFAULT 0,
		max_y INTEGER NOT NULL DEFAULT 0,
		max_z INTEGER NOT NULL DEFAULT 0,
		center_x INTEGER NOT NULL DEFAULT 0,
		center_y INTEGER NOT NULL DEFAULT 0,
		center_z INTEGER NOT NULL DEFAULT 0,
		pois_json TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS store_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_settlements_world ON settlements(world);
	CREATE INDEX IF NOT EXISTS idx_settlements_bounds
		ON settlements(world, min_x, max_x, min_z, max_z);
	`
	_, err := st.conn.Exec(schema)
	return err
}

type settlementRow struct {
	ID        string `db:"id"`
	World     string `db:"world"`
	Name      string `db:"name"`
	AnchorX   int    `db:"anchor_x"`
	AnchorY   int    `db:"anchor_y"`
	AnchorZ   int    `db:"anchor_z"`
	HasBounds int    `db:"has_bounds"`
	MinX      int    `db:"min_x"`
	MinY      int    `db:"min_y"`
	MinZ      int    `db:"min_z"`
	MaxX      int    `db:"max_x"`
	MaxY      int    `db:"max_y"`
	MaxZ      int    `db:"max_z"`
	CenterX   int    `db:"center_x"`
	CenterY   int    `db:"center_y"`
	CenterZ   int    `db:"center_z"`
	POIsJSON  string `db:"pois_json"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// Save upserts a settlement record (full replace of the stored row).
func (st *Store) Save(s *settlement.Settlement) error {
	poisJSON, err := json.Marshal(s.POIs)
	if err != nil {
		return fmt.Errorf("encode pois: %w", err)
	}

	var b geom.BoundingVolume
	hasBounds := 0
	if s.Bounds != nil {
		b = *s.Bounds
		hasBounds = 1
	}

	_, err = st.conn.Exec(`INSERT OR REPLACE INTO settlements
		(id, world, name, anchor_x, anchor_y, anchor_z,
		 has_bounds, min_x, min_y, min_z, max_x, max_y, max_z,
		 center_x, center_y, center_z, pois_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.World, s.Name,
		s.Anchor.X, s.Anchor.Y, s.Anchor.Z,
		hasBounds, b.MinX, b.MinY, b.MinZ, b.MaxX, b.MaxY, b.MaxZ,
		b.CenterX, b.CenterY, b.CenterZ,
		string(poisJSON),
		s.CreatedAt.UTC().Format(time.RFC3339Nano),
		s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert settlement %s: %w", s.ID, err)
	}
	return nil
}

// Load fetches a settlement by id.
func (st *Store) Load(id uuid.UUID) (*settlement.Settlement, error) {
	var row settlementRow
	err := st.conn.Get(&row, "SELECT * FROM settlements WHERE id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load settlement %s: %w", id, err)
	}
	return row.toSettlement()
}

// FindContaining returns the settlement whose bounds contain the
// position, or ErrNotFound. Vertical containment is part of the match.
func (st *Store) FindContaining(world string, x, y, z int) (*settlement.Settlement, error) {
	var row settlementRow
	err := st.conn.Get(&row, `SELECT * FROM settlements
		WHERE world = ? AND has_bounds = 1
		  AND min_x <= ? AND max_x >= ?
		  AND min_y <= ? AND max_y >= ?
		  AND min_z <= ? AND max_z >= ?
		LIMIT 1`,
		world, x, x, y, y, z, z)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find containing (%d,%d,%d): %w", x, y, z, err)
	}
	return row.toSettlement()
}

// ListWorld returns all settlements of one world, most recently updated first.
func (st *Store) ListWorld(world string) ([]*settlement.Settlement, error) {
	var rows []settlementRow
	err := st.conn.Select(&rows,
		"SELECT * FROM settlements WHERE world = ? ORDER BY updated_at DESC", world)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}

	out := make([]*settlement.Settlement, 0, len(rows))
	for _, row := range rows {
		s, err := row.toSettlement()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// SaveMeta stores a key-value pair in store metadata.
func (st *Store) SaveMeta(key, value string) error {
	_, err := st.conn.Exec(
		"INSERT OR REPLACE INTO store_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (st *Store) GetMeta(key string) (string, error) {
	var value string
	err := st.conn.Get(&value, "SELECT value FROM store_meta WHERE key = ?", key)
	return value, err
}

func (r settlementRow) toSettlement() (*settlement.Settlement, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("settlement id %q: %w", r.ID, err)
	}

	var pois []settlement.PointOfInterest
	if err := json.Unmarshal([]byte(r.POIsJSON), &pois); err != nil {
		return nil, fmt.Errorf("decode pois for %s: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at for %s: %w", r.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("updated_at for %s: %w", r.ID, err)
	}

	s := &settlement.Settlement{
		ID:        id,
		World:     r.World,
		Name:      r.Name,
		Anchor:    geom.Point{X: r.AnchorX, Y: r.AnchorY, Z: r.AnchorZ},
		POIs:      pois,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if r.HasBounds != 0 {
		s.Bounds = &geom.BoundingVolume{
			MinX: r.MinX, MinY: r.MinY, MinZ: r.MinZ,
			MaxX: r.MaxX, MaxY: r.MaxY, MaxZ: r.MaxZ,
			CenterX: r.CenterX, CenterY: r.CenterY, CenterZ: r.CenterZ,
		}
	}
	return s, nil
}
