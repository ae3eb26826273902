package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyShape(t *testing.T) {
	key := GenerateKey("thumbnails", "My Video Cover.PNG")
	assert.Regexp(t, `^thumbnails/\d+-[0-9a-f]{8}\.png$`, key)
}

func TestGenerateKeyUnknownFolderFallsBackToMisc(t *testing.T) {
	key := GenerateKey("../../etc", "x.jpg")
	assert.True(t, strings.HasPrefix(key, "misc/"), "got %q", key)
}

func TestGenerateKeyMissingExtension(t *testing.T) {
	key := GenerateKey("videos", "raw-footage")
	assert.Regexp(t, `^videos/\d+-[0-9a-f]{8}\.bin$`, key)
}

func TestGenerateKeyUniqueness(t *testing.T) {
	a := GenerateKey("hero", "banner.jpg")
	b := GenerateKey("hero", "banner.jpg")
	assert.NotEqual(t, a, b)
}

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "https://cdn.example.com/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "team/123-abcd1234.png", "image/png", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/team/123-abcd1234.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "team", "123-abcd1234.png"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestNewStorageFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_LOCAL_PATH", t.TempDir())
	t.Setenv("PUBLIC_BASE_URL", "")

	store, err := NewStorageFromEnv()
	require.NoError(t, err)
	_, ok := store.(*LocalStorage)
	assert.True(t, ok)
}

func TestNewStorageFromEnvRejectsUnknownType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")

	_, err := NewStorageFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage type")
}
