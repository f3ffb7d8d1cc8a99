package ports

import "github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"

type DispatchJournal interface {
	Record(entry journal.Entry) error
	GetVerbFrequencies(scanLimit int, outputLimit int) ([]journal.VerbFrequency, error)
	GetSourceIdentifier() string
}
