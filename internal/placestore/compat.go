package placestore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/bstardust/photoplace/pkg/common"
)

// EngineVersion is the schema generation this engine was built
// against. Only major and minor participate in the compatibility
// gate; the patch component is ignored on both sides.
const EngineVersion = "0.1.0"

const versionKey = "db_version"

// SchemaVersion is a parsed major.minor store version.
type SchemaVersion struct {
	Major uint
	Minor uint
}

func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseSchemaVersion parses "major.minor" or "major.minor.patch",
// discarding the patch component.
func ParseSchemaVersion(s string) (SchemaVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q", s)
	}
	major, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q: %w", s, err)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q: %w", s, err)
	}
	return SchemaVersion{Major: uint(major), Minor: uint(minor)}, nil
}

// assertCompatible reads the store's recorded version and rejects
// the handle unless major and minor match the engine's. An absent or
// unparsable stored version is reported the same way, carrying both
// version strings for diagnostics.
func assertCompatible(ctx context.Context, db *sql.DB) error {
	var raw string
	err := db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = ?", versionKey,
	).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return &common.IncompatibleSchemaError{
				StoreVersion:  "missing",
				EngineVersion: EngineVersion,
			}
		}
		return common.NewStoreError("read schema version", err)
	}

	stored, err := ParseSchemaVersion(raw)
	if err != nil {
		return &common.IncompatibleSchemaError{
			StoreVersion:  raw,
			EngineVersion: EngineVersion,
		}
	}

	engine, err := ParseSchemaVersion(EngineVersion)
	if err != nil {
		return common.NewStoreError("parse engine version", err)
	}

	if stored != engine {
		return &common.IncompatibleSchemaError{
			StoreVersion:  raw,
			EngineVersion: EngineVersion,
		}
	}
	return nil
}
