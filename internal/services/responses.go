package services

import (
	"time"

	"modscan/internal/domain"
)

type ScanResult struct {
	RootPath string
	Files    []domain.ModFile
	Duration time.Duration
}

type Collection struct {
	RootPath       string
	Inventory      domain.Inventory
	Report         Report
	ManifestDigest string
	Duration       time.Duration
}
