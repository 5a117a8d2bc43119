package ui

import "modscan/internal/services"

type scanResultMsg struct {
	seq        int
	collection services.Collection
	err        error
}
