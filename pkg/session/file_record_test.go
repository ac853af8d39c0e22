package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlist/castkit/pkg/session"
)

func TestFileRecordStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "session.json")
		store := session.NewFileRecordStore(path)

		rec, err := session.NewRecord("tok1", testUser())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, rec))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok1", got.Token)
		assert.True(t, got.Complete())
	})

	t.Run("load without file", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileRecordStore(filepath.Join(t.TempDir(), "session.json"))
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("load corrupt file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("<html>nope</html>"), 0o600))

		store := session.NewFileRecordStore(path)
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, session.ErrRecordCorrupt)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		store := session.NewFileRecordStore(path)

		rec, err := session.NewRecord("tok1", testUser())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, rec))

		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		_, err = store.Load(ctx)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("file permissions are owner-only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		store := session.NewFileRecordStore(path)

		rec, err := session.NewRecord("tok1", testUser())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, rec))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}
