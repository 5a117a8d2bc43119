package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"modscan/internal/domain"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFolder(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestFSScannerScan(t *testing.T) {
	t.Parallel()

	dir := writeFolder(t, map[string]string{
		"mod-list.json":    `{"mods":[]}`,
		"foo_1.0.0.zip":    "zip",
		"bar_0.9.0.zip":    "zip",
		"mod-settings.dat": "dat",
		"random.txt":       "txt",
	})
	scanner := NewFSScanner(NewClassifier(DefaultClassifierNames()), quietLogger()).WithWorkers(3)

	result, err := scanner.Scan(context.Background(), ScanRequest{RootPath: dir})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []struct {
		name string
		kind domain.Kind
	}{
		{name: "bar_0.9.0.zip", kind: domain.KindPackage},
		{name: "foo_1.0.0.zip", kind: domain.KindPackage},
		{name: "mod-list.json", kind: domain.KindListManifest},
		{name: "mod-settings.dat", kind: domain.KindSettingsBlob},
		{name: "random.txt", kind: domain.KindUnrecognized},
	}
	if len(result.Files) != len(want) {
		t.Fatalf("Scan() returned %d files, want %d", len(result.Files), len(want))
	}
	for i, file := range result.Files {
		if file.Entry.Name != want[i].name || file.Kind() != want[i].kind {
			t.Errorf("file %d = %s (%s), want %s (%s)", i, file.Entry.Name, file.Kind(), want[i].name, want[i].kind)
		}
		if file.Entry.Path != filepath.Join(result.RootPath, file.Entry.Name) {
			t.Errorf("path = %s", file.Entry.Path)
		}
	}

	data, err := scanner.ReadFile(result.Files[2].Entry)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"mods":[]}` {
		t.Errorf("ReadFile() = %q", data)
	}
}

func TestFSScannerEmptyFolder(t *testing.T) {
	t.Parallel()

	scanner := NewFSScanner(NewClassifier(DefaultClassifierNames()), quietLogger())
	result, err := scanner.Scan(context.Background(), ScanRequest{RootPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %+v, want none", result.Files)
	}
}

func TestFSScannerMissingFolder(t *testing.T) {
	t.Parallel()

	scanner := NewFSScanner(NewClassifier(DefaultClassifierNames()), quietLogger())
	_, err := scanner.Scan(context.Background(), ScanRequest{RootPath: filepath.Join(t.TempDir(), "absent")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Scan() error = %v, want ErrNotExist", err)
	}
}

func TestFSScannerCancelled(t *testing.T) {
	t.Parallel()

	dir := writeFolder(t, map[string]string{"foo_1.0.0.zip": "zip"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewFSScanner(NewClassifier(DefaultClassifierNames()), quietLogger())
	_, err := scanner.Scan(ctx, ScanRequest{RootPath: dir})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Scan() error = %v, want context.Canceled", err)
	}
}
