package registrar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deploy-agent/internal/config"
	"github.com/conn-castle/deploy-agent/internal/controlplane"
	"github.com/conn-castle/deploy-agent/internal/testutil"
)

// zipFetcher fabricates a cached zip artifact per fetch, mimicking the cache
// layout the real fetcher produces.
type zipFetcher struct {
	t     *testing.T
	dir   string
	calls int
	err   error
}

func (f *zipFetcher) Fetch(_ context.Context, name, version, fileName string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	savedDir := filepath.Join(f.dir, name, version)
	require.NoError(f.t, os.MkdirAll(savedDir, 0o755))
	path := filepath.Join(savedDir, fileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		testutil.WriteHelloZip(f.t, path)
	}
	return path, nil
}

func sampleInfo() controlplane.InstallerInfo {
	return controlplane.InstallerInfo{
		URL:            "http://cp.example.com",
		InstallerToken: "tok-1",
		AppName:        "demo-app",
		AppVersion:     "0.1.0",
		AppFileName:    "demo-app-0.1.0.zip",
		AppRunPort:     8080,
		JDKName:        "openjdk",
		JDKVersion:     "11.0.1",
		JDKFileName:    "openjdk-11.0.1.zip",
	}
}

func newTestRegistrar(t *testing.T) (*Registrar, *config.Store, *zipFetcher, config.Paths) {
	t.Helper()
	paths := config.DefaultPaths(t.TempDir())
	store := config.NewStore(paths.ConfigPath)
	fetcher := &zipFetcher{t: t, dir: paths.SoftwaresDir}
	return New(paths, store, fetcher), store, fetcher, paths
}

func TestInstall(t *testing.T) {
	reg, store, fetcher, paths := newTestRegistrar(t)
	cfg := &config.Config{ServerIdentity: "aa:bb"}

	require.NoError(t, reg.Install(context.Background(), cfg, sampleInfo()))

	assert.Equal(t, 2, fetcher.calls)

	// Both artifacts are extracted into their instance directories.
	appFile := filepath.Join(paths.AppInstanceDir("demo-app", "0.1.0"), "hello.txt")
	jdkFile := filepath.Join(paths.JDKInstanceDir("openjdk", "11.0.1"), "hello.txt")
	assert.FileExists(t, appFile)
	assert.FileExists(t, jdkFile)

	// The store was persisted with the new record.
	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Installers, 1)
	assert.Equal(t, "tok-1", loaded.Installers[0].InstallerToken)
	assert.Equal(t, uint32(8080), loaded.Installers[0].AppRunPort)
}

func TestInstallPortConflict(t *testing.T) {
	reg, _, _, _ := newTestRegistrar(t)
	cfg := &config.Config{ServerIdentity: "aa:bb"}
	require.NoError(t, cfg.Add(config.Installer{
		URL: "1", InstallerToken: "other", AppName: "3", AppVersion: "4",
		AppFileName: "5", AppRunPort: 8080, JDKName: "7", JDKVersion: "8", JDKFileName: "9",
	}))

	err := reg.Install(context.Background(), cfg, sampleInfo())
	require.ErrorIs(t, err, config.ErrPortConflict)
	assert.Len(t, cfg.Installers, 1, "conflicting install must not mutate the store")
}

func TestInstallRetryAfterSuccessConflicts(t *testing.T) {
	reg, _, _, _ := newTestRegistrar(t)
	cfg := &config.Config{ServerIdentity: "aa:bb"}

	require.NoError(t, reg.Install(context.Background(), cfg, sampleInfo()))

	err := reg.Install(context.Background(), cfg, sampleInfo())
	require.ErrorIs(t, err, config.ErrPortConflict)
	assert.Len(t, cfg.Installers, 1)
}

func TestInstallValidatesInfo(t *testing.T) {
	reg, _, fetcher, _ := newTestRegistrar(t)
	cfg := &config.Config{ServerIdentity: "aa:bb"}

	info := sampleInfo()
	info.AppFileName = ""
	err := reg.Install(context.Background(), cfg, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appFileName")
	assert.Zero(t, fetcher.calls, "validation failure must precede any fetch")

	info = sampleInfo()
	info.AppRunPort = 0
	require.Error(t, reg.Install(context.Background(), cfg, info))
}

func TestInstallFetchFailureAborts(t *testing.T) {
	reg, store, fetcher, _ := newTestRegistrar(t)
	fetcher.err = fmt.Errorf("connection refused")
	cfg := &config.Config{ServerIdentity: "aa:bb"}

	err := reg.Install(context.Background(), cfg, sampleInfo())
	require.Error(t, err)
	assert.Empty(t, cfg.Installers)

	// Nothing was persisted.
	if _, err := os.Stat(store.Path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no config file after failed install, stat err = %v", err)
	}
}
