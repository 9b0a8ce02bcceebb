package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStorePutGet(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	require.NoError(t, st.Put("rec", record{Name: "a", Count: 3}))

	var got record
	ok, err := st.Get("rec", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record{Name: "a", Count: 3}, got)
}

func TestStoreGetMissing(t *testing.T) {
	st := New(t.TempDir())

	var got record
	ok, err := st.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	var got record
	ok, err := st.Get("bad", &got)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestStoreKeysAndDelete(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Put("b", record{}))
	require.NoError(t, st.Put("a", record{}))

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, st.Delete("a"))
	require.NoError(t, st.Delete("a"))
	keys, err = st.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	assert.Empty(t, leftovers)
}

func TestStoreRejectsBadKeys(t *testing.T) {
	st := New(t.TempDir())
	assert.ErrorIs(t, st.Put("", record{}), ErrEmptyKey)
	assert.Error(t, st.Put("../escape", record{}))
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Put("k", record{Name: "x"}))

	var got record
	ok, err := m.Get("k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", got.Name)

	keys, _ := m.Keys()
	assert.Equal(t, []string{"k"}, keys)
}
