package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRCMissingFileReturnsDefaults(t *testing.T) {
	rc, err := LoadRC(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing rc file must not error: %v", err)
	}
	if rc.Prompt != DefaultPrompt {
		t.Fatalf("expected default prompt, got %q", rc.Prompt)
	}
	if rc.HistoryFile != DefaultHistoryFile {
		t.Fatalf("expected default history file, got %q", rc.HistoryFile)
	}
	if rc.Aliases == nil {
		t.Fatal("aliases map must never be nil")
	}
}

func TestLoadRCOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	content := "prompt: \"$ \"\nhistory_file: hist.db\naliases:\n  move: mv\n  ll: ls\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := LoadRC(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rc.Prompt != "$ " {
		t.Fatalf("prompt override lost: %q", rc.Prompt)
	}
	if rc.HistoryFile != "hist.db" {
		t.Fatalf("history override lost: %q", rc.HistoryFile)
	}
	if rc.Aliases["move"] != "mv" || rc.Aliases["ll"] != "ls" {
		t.Fatalf("aliases lost: %v", rc.Aliases)
	}
}

func TestLoadRCPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"% \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rc, err := LoadRC(path)
	if err != nil {
		t.Fatal(err)
	}
	if rc.Prompt != "% " || rc.HistoryFile != DefaultHistoryFile {
		t.Fatalf("partial file broke defaults: %+v", rc)
	}
}

func TestLoadRCBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRC(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
