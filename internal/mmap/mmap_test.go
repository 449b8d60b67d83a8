package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cloud.bin")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestMmap_OpenReadClose(t *testing.T) {
	content := []byte("Hello, Mmap!")
	m, err := Open(writeTemp(t, content))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())
	require.NoError(t, m.Advise(AccessSequential))

	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "Mmap!", string(buf))

	n, err = m.ReadAt(make([]byte, 10), 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	buf3 := make([]byte, 10)
	n, err = m.ReadAt(buf3, 7)
	assert.Equal(t, 5, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "Mmap!", string(buf3[:n]))

	_, err = m.ReadAt(buf, -1)
	assert.Equal(t, ErrInvalidOffset, err)
}

func TestMmap_EmptyFile(t *testing.T) {
	m, err := Open(writeTemp(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Bytes())
}

func TestMmap_Slice(t *testing.T) {
	m, err := Open(writeTemp(t, make([]byte, 1024)))
	require.NoError(t, err)

	b, err := m.Slice(100, 200)
	require.NoError(t, err)
	assert.Len(t, b, 200)
	assert.Equal(t, 200, cap(b))
	require.NoError(t, m.AdviseRange(100, 200, AccessRandom))

	_, err = m.Slice(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = m.Slice(1000, 100)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	b, err = m.Slice(1024, 0)
	require.NoError(t, err)
	assert.Empty(t, b)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessDefault), ErrClosed)
	_, err = m.Slice(0, 1)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMmap_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
