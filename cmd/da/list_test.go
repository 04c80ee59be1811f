package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestListCommandEmpty(t *testing.T) {
	stubServerIdentity(t)
	dir := t.TempDir()

	var stdout bytes.Buffer
	if err := execute([]string{"da", "list", "--dir", dir}, &stdout, new(bytes.Buffer)); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(stdout.String(), "No installers") {
		t.Fatalf("expected empty notice, got %q", stdout.String())
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	seedStore(t, dir)

	var stdout bytes.Buffer
	if err := execute([]string{"da", "list", "--dir", dir}, &stdout, new(bytes.Buffer)); err != nil {
		t.Fatalf("list: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"TOKEN", "tok-1", "demo-app", "8080", "openjdk 11.0.1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output, got:\n%s", want, out)
		}
	}
}
