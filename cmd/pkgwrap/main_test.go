package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

func TestParseFlagsInstall(t *testing.T) {
	f, err := parseFlags([]string{"--install", "vim,git", "--timeout", "900"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if f.Action != actionInstall {
		t.Errorf("Expected action %q, got %q", actionInstall, f.Action)
	}
	if !reflect.DeepEqual(f.Packages, []string{"vim", "git"}) {
		t.Errorf("Expected packages [vim git], got %v", f.Packages)
	}
	if f.TimeoutSeconds != 900 {
		t.Errorf("Expected timeout 900, got %d", f.TimeoutSeconds)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	f, err := parseFlags([]string{"--system-update"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if f.Action != actionUpdate {
		t.Errorf("Expected action %q, got %q", actionUpdate, f.Action)
	}
	if len(f.Packages) != 0 {
		t.Errorf("Expected no packages, got %v", f.Packages)
	}
	if f.TimeoutSeconds != 600 {
		t.Errorf("Expected default timeout 600, got %d", f.TimeoutSeconds)
	}
	if f.Debug {
		t.Error("Expected debug to default to false")
	}
}

func TestParseFlagsLaterActionWins(t *testing.T) {
	f, err := parseFlags([]string{"--install", "vim", "--remove", "nano"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if f.Action != actionRemove {
		t.Errorf("Expected action %q, got %q", actionRemove, f.Action)
	}
	if !reflect.DeepEqual(f.Packages, []string{"nano"}) {
		t.Errorf("Expected packages [nano], got %v", f.Packages)
	}

	f, err = parseFlags([]string{"--remove", "nano", "--system-update"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if f.Action != actionUpdate {
		t.Errorf("Expected action %q, got %q", actionUpdate, f.Action)
	}
	if len(f.Packages) != 0 {
		t.Errorf("Expected no packages, got %v", f.Packages)
	}
}

func TestParseFlagsVerbatimSplit(t *testing.T) {
	f, err := parseFlags([]string{"--install", "vim, git,,a b"})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	expected := []string{"vim", " git", "", "a b"}
	if !reflect.DeepEqual(f.Packages, expected) {
		t.Errorf("Expected packages %q, got %q", expected, f.Packages)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"--frobnicate"}); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}

func TestParseFlagsRejectsTrailingArguments(t *testing.T) {
	_, err := parseFlags([]string{"--install", "vim", "git"})
	if err == nil {
		t.Fatal("Expected an error for space-separated package names")
	}
	if !strings.Contains(err.Error(), `"git"`) {
		t.Errorf("Expected the stray token in the error, got %v", err)
	}

	if _, err := parseFlags([]string{"--install", "vim", "stray", "--remove", "gcc"}); err == nil {
		t.Error("Expected an error when extra tokens follow the package list")
	}
}

func TestParseFlagsNoAction(t *testing.T) {
	if _, err := parseFlags([]string{"--timeout", "30"}); err == nil {
		t.Error("Expected an error when no action flag is given")
	}
}

func TestRunInvalidArguments(t *testing.T) {
	if got := run([]string{"--bogus"}); got != exitFailure {
		t.Errorf("Expected exit code %d, got %d", exitFailure, got)
	}
}

func TestRunRefusesNonRoot(t *testing.T) {
	geteuid = func() int { return 1000 }
	defer func() { geteuid = os.Geteuid }()

	if got := run([]string{"--system-update"}); got != exitFailure {
		t.Errorf("Expected exit code %d, got %d", exitFailure, got)
	}
}

func TestRunNoManagerExitsTwo(t *testing.T) {
	geteuid = func() int { return 0 }
	defer func() { geteuid = os.Geteuid }()

	t.Setenv("PATH", t.TempDir())
	t.Setenv("USE_PROXY", "")

	if got := run([]string{"--system-update"}); got != exitNoManager {
		t.Errorf("Expected exit code %d, got %d", exitNoManager, got)
	}
}

func TestRunInstallSucceeds(t *testing.T) {
	systemConf, err := os.ReadFile("/etc/dnf/dnf.conf")
	if err != nil {
		t.Skipf("No readable dnf configuration on this host: %v", err)
	}

	geteuid = func() int { return 0 }
	defer func() { geteuid = os.Geteuid }()

	binDir := t.TempDir()
	argvPath := filepath.Join(binDir, "argv")
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > %s\nexit 0\n", argvPath)
	if err := os.WriteFile(filepath.Join(binDir, "dnf"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to create fake dnf: %v", err)
	}

	t.Setenv("PATH", binDir)
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("USE_PROXY", "")

	if got := run([]string{"--install", "vim,git", "--timeout", "900"}); got != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, got)
	}

	raw, err := os.ReadFile(argvPath)
	if err != nil {
		t.Fatalf("Failed to read the recorded arguments: %v", err)
	}
	argv := strings.Fields(string(raw))
	if len(argv) != 6 || argv[0] != "--config" {
		t.Fatalf("Unexpected dnf arguments: %v", argv)
	}
	if !reflect.DeepEqual(argv[2:], []string{"install", "-y", "vim", "git"}) {
		t.Errorf("Expected install -y vim git, got %v", argv[2:])
	}

	// Proxy mode off: the config the manager consumed matches the system
	// file byte for byte.
	tmpConf, err := os.ReadFile(argv[1])
	if err != nil {
		t.Fatalf("Failed to read the temp configuration: %v", err)
	}
	if string(tmpConf) != string(systemConf) {
		t.Error("Expected the temp configuration to match the system file")
	}
}

type fakeManager struct {
	lastAction string
	lastPkgs   []string
}

func (m *fakeManager) Name() string { return "fake" }

func (m *fakeManager) InstallPackages(ctx context.Context, pkgs []string) (commandmanager.CommandResult, error) {
	m.lastAction = actionInstall
	m.lastPkgs = pkgs
	return commandmanager.CommandResult{}, nil
}

func (m *fakeManager) RemovePackages(ctx context.Context, pkgs []string) (commandmanager.CommandResult, error) {
	m.lastAction = actionRemove
	m.lastPkgs = pkgs
	return commandmanager.CommandResult{}, nil
}

func (m *fakeManager) UpgradeAll(ctx context.Context) (commandmanager.CommandResult, error) {
	m.lastAction = actionUpdate
	m.lastPkgs = nil
	return commandmanager.CommandResult{}, nil
}

func (m *fakeManager) ListInstalled(ctx context.Context) (commandmanager.CommandResult, error) {
	m.lastAction = actionList
	m.lastPkgs = nil
	return commandmanager.CommandResult{STDOUT: "vim\n"}, nil
}

func TestRunActionDispatch(t *testing.T) {
	manager := &fakeManager{}

	f := &flags{Action: actionInstall, Packages: []string{"vim", "git"}}
	if _, err := runAction(context.Background(), manager, f); err != nil {
		t.Fatalf("runAction failed: %v", err)
	}
	if manager.lastAction != actionInstall {
		t.Errorf("Expected action %q, got %q", actionInstall, manager.lastAction)
	}
	if !reflect.DeepEqual(manager.lastPkgs, []string{"vim", "git"}) {
		t.Errorf("Expected packages [vim git], got %v", manager.lastPkgs)
	}

	f = &flags{Action: actionUpdate}
	if _, err := runAction(context.Background(), manager, f); err != nil {
		t.Fatalf("runAction failed: %v", err)
	}
	if manager.lastAction != actionUpdate {
		t.Errorf("Expected action %q, got %q", actionUpdate, manager.lastAction)
	}

	f = &flags{Action: "frobnicate"}
	if _, err := runAction(context.Background(), manager, f); err == nil {
		t.Error("Expected an error for an unknown action")
	}
}
