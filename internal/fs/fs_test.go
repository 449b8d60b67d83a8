package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	require.NoError(t, lfs.MkdirAll(dir, 0o755))

	f, err := lfs.CreateTemp(dir, ".tmp-*")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	final := filepath.Join(dir, "hello.txt")
	require.NoError(t, lfs.Rename(f.Name(), final))

	data, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, lfs.Remove(final))
	_, err = os.Stat(final)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS(t *testing.T) {
	dir := t.TempDir()

	t.Run("write limit", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("limited", Fault{FailAfterBytes: 4})

		f, err := ffs.CreateTemp(dir, "limited-*")
		require.NoError(t, err)
		defer f.Close()

		_, err = f.Write([]byte("abcd"))
		require.NoError(t, err)
		_, err = f.Write([]byte("e"))
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("sync and close", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("sync", Fault{FailAfterBytes: -1, FailOnSync: true})
		ffs.AddRule("close", Fault{FailAfterBytes: -1, FailOnClose: true, Err: os.ErrPermission})

		f, err := ffs.CreateTemp(dir, "sync-*")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Sync(), ErrInjected)
		require.NoError(t, f.Close())

		g, err := ffs.CreateTemp(dir, "close-*")
		require.NoError(t, err)
		assert.ErrorIs(t, g.Close(), os.ErrPermission)
	})

	t.Run("rename", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("pinned", Fault{FailAfterBytes: -1, FailOnRename: true})

		f, err := ffs.CreateTemp(dir, "pinned-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.ErrorIs(t, ffs.Rename(f.Name(), filepath.Join(dir, "x")), ErrInjected)
	})

	t.Run("no rule", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		f, err := ffs.CreateTemp(dir, "plain-*")
		require.NoError(t, err)
		_, err = f.Write(make([]byte, 1<<16))
		require.NoError(t, err)
		require.NoError(t, f.Close())
	})
}
