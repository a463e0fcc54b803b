package placestore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bstardust/photoplace/pkg/common"
)

// newTestDataset creates a dataset file with the given schema
// version and returns its path. A nil version pointer skips the
// db_version row entirely.
func newTestDataset(t *testing.T, version *string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "places_test.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE meta (key TEXT PRIMARY KEY, value TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE places (
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		admin TEXT,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		kind TEXT NOT NULL,
		importance REAL NOT NULL
	)`)
	require.NoError(t, err)

	if version != nil {
		_, err = db.Exec(`INSERT INTO meta (key, value) VALUES ('db_version', ?)`, *version)
		require.NoError(t, err)
	}
	return path
}

func strptr(s string) *string { return &s }

func TestParseSchemaVersion(t *testing.T) {
	v, err := ParseSchemaVersion("1.2")
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion{Major: 1, Minor: 2}, v)

	v, err = ParseSchemaVersion("0.1.3")
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion{Major: 0, Minor: 1}, v, "patch component is discarded")

	for _, bad := range []string{"1", "", "a.b", "1.x", "-1.2"} {
		_, err := ParseSchemaVersion(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestSchemaVersionString(t *testing.T) {
	assert.Equal(t, "0.1", SchemaVersion{Major: 0, Minor: 1}.String())
}

func TestOpenCompatibleVersions(t *testing.T) {
	// Any patch level of the engine's major.minor is accepted.
	for _, version := range []string{"0.1", "0.1.0", "0.1.3"} {
		store, err := Open(context.Background(), newTestDataset(t, strptr(version)))
		require.NoError(t, err, "version %q should be compatible", version)
		store.Close()
	}
}

func TestOpenIncompatibleVersions(t *testing.T) {
	for _, version := range []string{"0.0.1", "0.2", "1.1.0", "1.0.0"} {
		_, err := Open(context.Background(), newTestDataset(t, strptr(version)))
		require.Error(t, err, "version %q should be incompatible", version)

		var incompat *common.IncompatibleSchemaError
		require.ErrorAs(t, err, &incompat)
		assert.Equal(t, version, incompat.StoreVersion)
		assert.Equal(t, EngineVersion, incompat.EngineVersion)
	}
}

func TestOpenUnparsableVersion(t *testing.T) {
	_, err := Open(context.Background(), newTestDataset(t, strptr("garbage")))

	var incompat *common.IncompatibleSchemaError
	require.ErrorAs(t, err, &incompat)
	assert.Equal(t, "garbage", incompat.StoreVersion)
}

func TestOpenMissingVersion(t *testing.T) {
	_, err := Open(context.Background(), newTestDataset(t, nil))

	var incompat *common.IncompatibleSchemaError
	require.ErrorAs(t, err, &incompat)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(context.Background(), newTestDataset(t, strptr("0.1"))))
	assert.Error(t, Validate(context.Background(), newTestDataset(t, strptr("9.9"))))
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "places_v0.1.db", DefaultFilename())
}
