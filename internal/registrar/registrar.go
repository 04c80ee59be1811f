// Package registrar turns a control-plane registration record into a locally
// installed, persisted application instance.
package registrar

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/deploy-agent/internal/archive"
	"github.com/conn-castle/deploy-agent/internal/config"
	"github.com/conn-castle/deploy-agent/internal/controlplane"
	"github.com/conn-castle/deploy-agent/internal/messages"
)

// Fetcher downloads an artifact into the local cache and returns its path.
type Fetcher interface {
	Fetch(ctx context.Context, name, version, fileName string) (string, error)
}

// Store persists the installer config.
type Store interface {
	Save(cfg *config.Config) error
}

// Registrar runs the install pipeline: fetch, extract, register, persist.
type Registrar struct {
	Paths   config.Paths
	Store   Store
	Fetcher Fetcher
	// Extract is a seam for tests; defaults to archive.ExtractTo.
	Extract func(sourcePath, targetDir string) error
}

// New returns a registrar over the given paths, store and fetcher.
func New(paths config.Paths, store Store, fetcher Fetcher) *Registrar {
	return &Registrar{
		Paths:   paths,
		Store:   store,
		Fetcher: fetcher,
		Extract: archive.ExtractTo,
	}
}

// Install fetches and extracts the application and JDK artifacts named by
// info, registers the new installer in cfg and persists the store.
//
// Any step's failure aborts the rest; completed steps are left in place so a
// retry resumes cheaply (fetch and extract are naturally idempotent, and the
// port-conflict check prevents silent duplication). The store is only
// mutated, and only persisted, after both artifacts are installed.
func (r *Registrar) Install(ctx context.Context, cfg *config.Config, info controlplane.InstallerInfo) error {
	if r.Store == nil {
		return errors.New(messages.RegistrarStoreRequired)
	}
	if r.Fetcher == nil {
		return errors.New(messages.RegistrarClientRequired)
	}
	if err := validate(info); err != nil {
		return err
	}

	appPath, err := r.Fetcher.Fetch(ctx, info.AppName, info.AppVersion, info.AppFileName)
	if err != nil {
		return fmt.Errorf(messages.RegistrarFetchAppFmt, err)
	}
	jdkPath, err := r.Fetcher.Fetch(ctx, info.JDKName, info.JDKVersion, info.JDKFileName)
	if err != nil {
		return fmt.Errorf(messages.RegistrarFetchJDKFmt, err)
	}

	if err := r.extract(jdkPath, r.Paths.JDKInstanceDir(info.JDKName, info.JDKVersion)); err != nil {
		return fmt.Errorf(messages.RegistrarExtractJDKFmt, err)
	}
	if err := r.extract(appPath, r.Paths.AppInstanceDir(info.AppName, info.AppVersion)); err != nil {
		return fmt.Errorf(messages.RegistrarExtractAppFmt, err)
	}

	if existing := cfg.FindByPort(info.AppRunPort); existing != nil {
		return fmt.Errorf(messages.RegistrarPortBoundFmt, info.AppName, info.AppVersion,
			fmt.Errorf("%w: "+messages.ConfigPortConflictFmt, config.ErrPortConflict, info.AppRunPort, existing.InstallerToken))
	}

	if err := cfg.Add(config.Installer{
		URL:            info.URL,
		InstallerToken: info.InstallerToken,
		AppName:        info.AppName,
		AppVersion:     info.AppVersion,
		AppFileName:    info.AppFileName,
		AppRunPort:     info.AppRunPort,
		JDKName:        info.JDKName,
		JDKVersion:     info.JDKVersion,
		JDKFileName:    info.JDKFileName,
	}); err != nil {
		return err
	}

	if err := r.Store.Save(cfg); err != nil {
		return fmt.Errorf(messages.RegistrarPersistFmt, err)
	}
	return nil
}

func (r *Registrar) extract(sourcePath, targetDir string) error {
	extract := r.Extract
	if extract == nil {
		extract = archive.ExtractTo
	}
	return extract(sourcePath, targetDir)
}

// validate rejects an InstallerInfo with missing fields before any filesystem
// or store mutation happens. The store itself stays a dumb container.
func validate(info controlplane.InstallerInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"url", info.URL},
		{"installerToken", info.InstallerToken},
		{"appName", info.AppName},
		{"appVersion", info.AppVersion},
		{"appFileName", info.AppFileName},
		{"jdkName", info.JDKName},
		{"jdkVersion", info.JDKVersion},
		{"jdkFileName", info.JDKFileName},
	}
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf(messages.RegistrarFieldRequiredFmt, field.name)
		}
	}
	if info.AppRunPort == 0 {
		return errors.New(messages.RegistrarPortRequired)
	}
	return nil
}
