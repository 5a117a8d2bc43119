package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"modscan/internal/domain"
)

type FSScanner struct {
	classifier Classifier
	workers    int
	logger     *log.Logger
}

type classifyJob struct {
	index int
	entry domain.PathEntry
}

func NewFSScanner(classifier Classifier, logger *log.Logger) *FSScanner {
	if logger == nil {
		logger = log.Default()
	}
	return &FSScanner{
		classifier: classifier,
		workers:    maxInt(2, runtime.NumCPU()),
		logger:     logger,
	}
}

func (scanner *FSScanner) WithWorkers(count int) *FSScanner {
	if count > 0 {
		scanner.workers = count
	}
	return scanner
}

// Scan lists the folder and classifies every entry. Files come back in
// os.ReadDir order, which is sorted by name.
func (scanner *FSScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	start := time.Now()
	root := cleanPath(req.RootPath)
	entries, err := os.ReadDir(root)
	if err != nil {
		return ScanResult{RootPath: root, Duration: time.Since(start)}, err
	}

	files := make([]domain.ModFile, len(entries))
	workerCount := minInt(scanner.workers, maxInt(len(entries), 1))
	jobs := make(chan classifyJob, workerCount*8)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go scanner.worker(ctx, jobs, files, &wg)
	}

	var sendErr error
send:
	for index, entry := range entries {
		job := classifyJob{
			index: index,
			entry: domain.PathEntry{Name: entry.Name(), Path: filepath.Join(root, entry.Name())},
		}
		select {
		case <-ctx.Done():
			sendErr = ctx.Err()
			break send
		case jobs <- job:
		}
	}
	close(jobs)
	wg.Wait()

	if sendErr == nil {
		sendErr = ctx.Err()
	}
	if sendErr != nil {
		return ScanResult{RootPath: root, Duration: time.Since(start)}, sendErr
	}

	duration := time.Since(start)
	scanner.logger.Debug("scanned mods folder", "path", root, "entries", len(files), "workers", workerCount, "duration", duration)
	return ScanResult{RootPath: root, Files: files, Duration: duration}, nil
}

func (scanner *FSScanner) ReadFile(entry domain.PathEntry) ([]byte, error) {
	return os.ReadFile(entry.Path)
}

func (scanner *FSScanner) worker(ctx context.Context, jobs <-chan classifyJob, files []domain.ModFile, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		if ctx.Err() != nil {
			continue
		}
		files[job.index] = domain.ModFile{
			Entry:  job.entry,
			Record: scanner.classifier.Classify(job.entry.Name),
		}
	}
}

func cleanPath(path string) string {
	if path == "" {
		return path
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}

func isPermissionErr(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

func isNotExistErr(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
