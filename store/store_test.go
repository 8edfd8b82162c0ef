package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cquest/bagelbot/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataDir = "../testdata/data"

func TestDirRecords(t *testing.T) {
	ctx := context.Background()
	dir := NewDir(testDataDir)

	heroes, err := dir.Records(ctx, Hero)
	require.NoError(t, err)
	assert.Len(t, heroes, 9)
	assert.Contains(t, string(heroes[0]), `"h_kov_2"`)

	missing, err := NewDir(t.TempDir()).Records(ctx, Hero)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestDirRecordsMalformed(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "hero.json"), []byte(`{"not": "an array"}`), 0o644))

	_, err := NewDir(tmp).Records(context.Background(), Hero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hero.json")
}

func TestDirFiles(t *testing.T) {
	files := NewDir(testDataDir).Files()
	assert.Len(t, files, len(Kinds))
}

func openTestDB(t *testing.T) *SQL {
	t.Helper()
	db, err := pg.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return NewSQL(db)
}

func TestSQLImport(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)
	dir := NewDir(testDataDir)

	counts, err := s.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 9, counts[Hero])
	assert.Equal(t, 3, counts[Monster])

	for _, kind := range Kinds {
		want, err := dir.Records(ctx, kind)
		require.NoError(t, err)
		got, err := s.Records(ctx, kind)
		require.NoError(t, err)
		require.Len(t, got, len(want), "kind %s", kind)
		for i := range want {
			assert.JSONEq(t, string(want[i]), string(got[i]), "kind %s #%d", kind, i)
		}
	}
}

func TestSQLImportReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	_, err := s.Import(ctx, NewDir(testDataDir))
	require.NoError(t, err)
	_, err = s.Import(ctx, NewDir(testDataDir))
	require.NoError(t, err)

	n, err := s.Count(ctx, Hero)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestSQLRecordsEmpty(t *testing.T) {
	s := openTestDB(t)
	recs, err := s.Records(context.Background(), Skin)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
