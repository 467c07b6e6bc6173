package deploy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readAsset(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	return string(data)
}

func newTestProvisioner(t *testing.T) (*Provisioner, string, string) {
	t.Helper()
	source := t.TempDir()
	shared := filepath.Join(t.TempDir(), "shared")
	user := filepath.Join(t.TempDir(), "user")
	return New(source, shared, user, zerolog.Nop()), source, shared
}

func TestEnsureLayoutCreatesDirectories(t *testing.T) {
	p, _, shared := newTestProvisioner(t)

	require.NoError(t, p.EnsureLayout())
	assert.DirExists(t, shared)
	assert.DirExists(t, p.userDir)
}

func TestSyncCopiesAssets(t *testing.T) {
	p, source, shared := newTestProvisioner(t)
	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin")
	writeAsset(t, source, "dicts/base.dict.yaml", "entries: []")

	require.NoError(t, p.Sync(context.Background(), false))

	assert.Equal(t, "schema: pinyin", readAsset(t, shared, "pinyin.schema.yaml"))
	assert.Equal(t, "entries: []", readAsset(t, shared, "dicts/base.dict.yaml"))
	assert.FileExists(t, filepath.Join(shared, manifestName))
}

func TestSyncSkipsUnchangedAssets(t *testing.T) {
	p, source, shared := newTestProvisioner(t)
	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin")

	require.NoError(t, p.Sync(context.Background(), false))

	// Remove the deployed copy. Without fullCheck the manifest says the
	// asset is already current, so nothing is re-copied.
	require.NoError(t, os.Remove(filepath.Join(shared, "pinyin.schema.yaml")))
	require.NoError(t, p.Sync(context.Background(), false))
	assert.NoFileExists(t, filepath.Join(shared, "pinyin.schema.yaml"))

	// fullCheck ignores the manifest and restores the copy.
	require.NoError(t, p.Sync(context.Background(), true))
	assert.Equal(t, "schema: pinyin", readAsset(t, shared, "pinyin.schema.yaml"))
}

func TestSyncRecopiesChangedAssets(t *testing.T) {
	p, source, shared := newTestProvisioner(t)
	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin")
	require.NoError(t, p.Sync(context.Background(), false))

	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin v2")
	require.NoError(t, p.Sync(context.Background(), false))
	assert.Equal(t, "schema: pinyin v2", readAsset(t, shared, "pinyin.schema.yaml"))
}

func TestSyncWithoutSourceDir(t *testing.T) {
	shared := filepath.Join(t.TempDir(), "shared")
	user := filepath.Join(t.TempDir(), "user")
	p := New("", shared, user, zerolog.Nop())

	require.NoError(t, p.Sync(context.Background(), false))
	assert.DirExists(t, shared)
	assert.DirExists(t, user)
}

func TestSyncAsyncPublishesResult(t *testing.T) {
	p, source, shared := newTestProvisioner(t)
	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin")

	select {
	case err := <-p.SyncAsync(context.Background(), false):
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("sync did not complete")
	}
	assert.FileExists(t, filepath.Join(shared, "pinyin.schema.yaml"))
}

func TestCorruptManifestForcesRecopy(t *testing.T) {
	p, source, shared := newTestProvisioner(t)
	writeAsset(t, source, "pinyin.schema.yaml", "schema: pinyin")
	require.NoError(t, p.Sync(context.Background(), false))

	require.NoError(t, os.Remove(filepath.Join(shared, "pinyin.schema.yaml")))
	require.NoError(t, os.WriteFile(filepath.Join(shared, manifestName), []byte("not json"), 0o644))

	require.NoError(t, p.Sync(context.Background(), false))
	assert.FileExists(t, filepath.Join(shared, "pinyin.schema.yaml"))
}
