package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAll returns one instance of every backend rooted in a temp dir.
func openAll(t *testing.T) map[Backend]BlobStore {
	t.Helper()
	dir := t.TempDir()
	stores := make(map[Backend]BlobStore)
	for _, b := range Backends {
		s, err := Open(Options{
			Backend:    b,
			Directory:  filepath.Join(dir, "data"),
			SQLitePath: filepath.Join(dir, "db", "wallet.db"),
		})
		require.NoError(t, err, "open %s", b)
		t.Cleanup(func() { _ = s.Close() })
		stores[b] = s
	}
	return stores
}

func TestBlobStore_Contract(t *testing.T) {
	for backend, s := range openAll(t) {
		t.Run(string(backend), func(t *testing.T) {
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("k", []byte(`[{"id":"1"}]`)))
			got, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"}]`, string(got))

			// Set replaces the whole value.
			require.NoError(t, s.Set("k", []byte(`[]`)))
			got, err = s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestBlobStore_RejectsPathLikeKeys(t *testing.T) {
	stores := openAll(t)
	for _, b := range []Backend{BackendFile, BackendSQLite} {
		err := stores[b].Set("../escape", []byte("x"))
		var serr *StorageError
		require.True(t, errors.As(err, &serr), "backend %s", b)
		assert.Equal(t, "set", serr.Op)

		for _, key := range []string{"../escape", "", "a/b"} {
			_, err = stores[b].Get(key)
			require.True(t, errors.As(err, &serr), "backend %s key %q", b, key)
			assert.Equal(t, "get", serr.Op)
			assert.NotErrorIs(t, err, ErrNotFound)
		}
	}
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, b)

	_, err = ParseBackend("redis")
	assert.Error(t, err)

	_, err = Open(Options{Backend: "redis"})
	assert.Error(t, err)
}

func TestFileStore_WritesJSONFilePerKey(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("aek_wallet_transactions", []byte(`[]`)))
	assert.FileExists(t, filepath.Join(dir, "aek_wallet_transactions.json"))

	_, err = NewFileStore("")
	assert.Error(t, err)
}

func TestFileStore_ReadErrorIsStorageError(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	// A directory where the blob file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(s.Path("k"), 0750))
	_, err = s.Get("k")
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, BackendFile, serr.Backend)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v1")))
	require.NoError(t, s.Close())

	// Migrations must be idempotent on an existing database.
	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestMemoryStore_CopiesAndFailures(t *testing.T) {
	s := NewMemoryStore()
	in := []byte("abc")
	require.NoError(t, s.Set("k", in))
	in[0] = 'z'

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	s.FailSet = errors.New("quota exceeded")
	err = s.Set("k", []byte("new"))
	assert.ErrorContains(t, err, "quota exceeded")

	got, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
