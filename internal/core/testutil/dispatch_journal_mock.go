package testutil

import (
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// MockDispatchJournal is a mock implementation of the ports.DispatchJournal interface.
type MockDispatchJournal struct {
	RecordFunc              func(entry journal.Entry) error
	GetVerbFrequenciesFunc  func(scanLimit int, outputLimit int) ([]journal.VerbFrequency, error)
	GetSourceIdentifierFunc func() string
	// Recorded keeps every entry passed to Record.
	Recorded []journal.Entry
}

// Record mocks the Record method.
func (m *MockDispatchJournal) Record(entry journal.Entry) error {
	m.Recorded = append(m.Recorded, entry)
	if m.RecordFunc != nil {
		return m.RecordFunc(entry)
	}
	return nil
}

// GetVerbFrequencies mocks the GetVerbFrequencies method.
func (m *MockDispatchJournal) GetVerbFrequencies(scanLimit int, outputLimit int) ([]journal.VerbFrequency, error) {
	if m.GetVerbFrequenciesFunc != nil {
		return m.GetVerbFrequenciesFunc(scanLimit, outputLimit)
	}
	return nil, nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockDispatchJournal) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

var _ ports.DispatchJournal = (*MockDispatchJournal)(nil)
