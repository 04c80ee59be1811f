package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths("/srv/agent")

	if paths.ConfigPath != filepath.Join("/srv/agent", "config.toml") {
		t.Fatalf("unexpected config path %s", paths.ConfigPath)
	}
	if paths.SoftwaresDir != filepath.Join("/srv/agent", "softwares") {
		t.Fatalf("unexpected softwares dir %s", paths.SoftwaresDir)
	}

	appDir := paths.AppInstanceDir("demo-app", "0.1.0")
	if appDir != filepath.Join("/srv/agent", "prod", "demo-app", "0.1.0") {
		t.Fatalf("unexpected app instance dir %s", appDir)
	}
	jdkDir := paths.JDKInstanceDir("openjdk", "11.0.1")
	if jdkDir != filepath.Join("/srv/agent", "apps", "openjdk", "11.0.1") {
		t.Fatalf("unexpected jdk instance dir %s", jdkDir)
	}
}
