// Package placestore reads the bundled, pre-built place dataset: a
// read-only SQLite file with a places table and a meta key/value
// table recording the schema version. The store is opened per call
// or pooled by the host; this package never caches results and the
// schema gate runs on every query, so a reused handle is re-checked.
package placestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/bstardust/photoplace/pkg/common"
	"github.com/bstardust/photoplace/pkg/models"
)

const (
	// searchHalfWidthDeg is the bounding-box half-width of the
	// spatial pre-filter. An axis-aligned degree box, not a geodesic
	// circle: roughly 55 km at the equator, narrower ground distance
	// toward the poles. A separate tunable from the resolver's
	// distance cutoff.
	searchHalfWidthDeg = 0.5

	// candidateLimit caps the rows handed to scoring. Candidates
	// beyond the cap are never considered, even if they would score
	// higher than included ones.
	candidateLimit = 50
)

// DefaultFilename returns the conventional dataset filename for the
// engine's schema generation, e.g. "places_v0.1.db".
func DefaultFilename() string {
	v, _ := ParseSchemaVersion(EngineVersion)
	return fmt.Sprintf("places_v%s.db", v)
}

// Store is a handle to one place dataset. Safe for serialized use;
// concurrent access must be coordinated by the caller.
type Store struct {
	db *sql.DB
}

// Open opens the dataset at path and verifies its schema version.
// The returned handle is owned by the caller and must be closed.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.NewStoreError("open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, common.NewStoreError("open", err)
	}
	if err := assertCompatible(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Validate opens the dataset at path, runs the schema gate and
// closes it again. No place query is executed.
func Validate(ctx context.Context, path string) error {
	s, err := Open(ctx, path)
	if err != nil {
		return err
	}
	return s.Close()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// FetchCandidates returns places near (lat, lon), pre-filtered by a
// bounding box and ordered by stored importance, highest first. The
// schema gate runs before the query on every call; a gate failure
// short-circuits with no query executed.
func (s *Store) FetchCandidates(ctx context.Context, lat, lon float64) ([]models.Candidate, error) {
	if err := assertCompatible(ctx, s.db); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, country, admin, lat, lon, kind, importance
		 FROM places
		 WHERE lat BETWEEN ? AND ?
		   AND lon BETWEEN ? AND ?
		 ORDER BY importance DESC
		 LIMIT ?`,
		lat-searchHalfWidthDeg, lat+searchHalfWidthDeg,
		lon-searchHalfWidthDeg, lon+searchHalfWidthDeg,
		candidateLimit,
	)
	if err != nil {
		return nil, common.NewStoreError("query candidates", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		var (
			c     models.Candidate
			admin sql.NullString
			kind  string
		)
		if err := rows.Scan(&c.Name, &c.Country, &admin, &c.Lat, &c.Lon, &kind, &c.Importance); err != nil {
			return nil, common.NewStoreError("scan candidate", err)
		}
		if admin.Valid {
			c.Admin = admin.String
		}
		c.Kind = models.ParseKind(kind)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("query candidates", err)
	}
	return candidates, nil
}
