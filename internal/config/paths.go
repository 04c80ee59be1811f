package config

import "path/filepath"

// ConfigFileName is the store file name inside the agent working directory.
const ConfigFileName = "config.toml"

// Paths holds resolved paths for the agent working directory layout.
type Paths struct {
	Root         string
	ConfigPath   string
	SoftwaresDir string
	AppsDir      string
	ProdDir      string
}

// DefaultPaths returns the default layout for an agent working directory.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:         root,
		ConfigPath:   filepath.Join(root, ConfigFileName),
		SoftwaresDir: filepath.Join(root, "softwares"),
		AppsDir:      filepath.Join(root, "apps"),
		ProdDir:      filepath.Join(root, "prod"),
	}
}

// AppInstanceDir returns the production directory an application instance is
// extracted into.
func (p Paths) AppInstanceDir(appName, appVersion string) string {
	return filepath.Join(p.ProdDir, appName, appVersion)
}

// JDKInstanceDir returns the directory a JDK bundle is extracted into.
func (p Paths) JDKInstanceDir(jdkName, jdkVersion string) string {
	return filepath.Join(p.AppsDir, jdkName, jdkVersion)
}
