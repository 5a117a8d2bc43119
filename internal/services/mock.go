package services

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"time"

	"modscan/internal/domain"
)

// MockScanner serves an in-memory folder: entry name -> file contents.
type MockScanner struct {
	classifier Classifier
	entries    map[string][]byte
}

func NewMockScanner(classifier Classifier, entries map[string][]byte) *MockScanner {
	return &MockScanner{classifier: classifier, entries: entries}
}

func (scanner *MockScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}

	names := make([]string, 0, len(scanner.entries))
	for name := range scanner.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]domain.ModFile, 0, len(names))
	for _, name := range names {
		files = append(files, domain.ModFile{
			Entry:  domain.PathEntry{Name: name, Path: path.Join(req.RootPath, name)},
			Record: scanner.classifier.Classify(name),
		})
	}
	return ScanResult{RootPath: req.RootPath, Files: files, Duration: time.Since(start)}, nil
}

func (scanner *MockScanner) ReadFile(entry domain.PathEntry) ([]byte, error) {
	data, ok := scanner.entries[entry.Name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: entry.Path, Err: fs.ErrNotExist}
	}
	return data, nil
}
