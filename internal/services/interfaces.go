package services

import (
	"context"

	"modscan/internal/domain"
)

type Scanner interface {
	Scan(ctx context.Context, req ScanRequest) (ScanResult, error)
}

type FileReader interface {
	ReadFile(entry domain.PathEntry) ([]byte, error)
}

// Source enumerates a mods folder and reads the files it found.
type Source interface {
	Scanner
	FileReader
}
