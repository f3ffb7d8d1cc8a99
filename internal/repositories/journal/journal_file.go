package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/dustin/go-humanize"
)

/*
FileJournal records dispatched sub-commands in an append-only, tab separated
file and reports verb frequencies from it.
It implements the ports.DispatchJournal interface.
*/
type FileJournal struct {
	path      string
	tokenizer ports.Tokenizer
	mu        sync.Mutex
}

// NewFileJournal creates a new FileJournal. The tokenizer is used to find
// the verb of every recorded sub-command.
func NewFileJournal(path string, tokenizer ports.Tokenizer) (ports.DispatchJournal, error) {
	if path == "" {
		return nil, fmt.Errorf("journal file path cannot be empty")
	}
	if tokenizer == nil {
		return nil, fmt.Errorf("journal needs a tokenizer")
	}
	return &FileJournal{path: path, tokenizer: tokenizer}, nil
}

// Record implements the ports.DispatchJournal interface.
func (j *FileJournal) Record(entry journal.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal %s: %w", displayPath(j.path), err)
	}
	defer file.Close()

	if _, err := file.WriteString(formatEntry(entry)); err != nil {
		return fmt.Errorf("failed to write journal %s: %w", displayPath(j.path), err)
	}
	return nil
}

// GetVerbFrequencies implements the ports.DispatchJournal interface.
// A journal that does not exist yet has no frequencies.
func (j *FileJournal) GetVerbFrequencies(scanLimit int, outputLimit int) ([]journal.VerbFrequency, error) {
	j.mu.Lock()
	entries, err := readEntries(j.path)
	j.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return []journal.VerbFrequency{}, nil
		}
		return nil, fmt.Errorf("failed to read journal %s: %w", displayPath(j.path), err)
	}

	if scanLimit > 0 && len(entries) > scanLimit {
		entries = entries[len(entries)-scanLimit:]
	}
	return countVerbs(entries, j.tokenizer, outputLimit), nil
}

// GetSourceIdentifier implements the ports.DispatchJournal interface.
// The size is appended once the journal file exists.
func (j *FileJournal) GetSourceIdentifier() string {
	info, err := os.Stat(j.path)
	if err != nil {
		return fmt.Sprintf("File: %s", displayPath(j.path))
	}
	return fmt.Sprintf("File: %s (%s)", displayPath(j.path), humanize.Bytes(uint64(info.Size())))
}

func formatEntry(e journal.Entry) string {
	return strings.Join([]string{
		e.Time.UTC().Format(time.RFC3339Nano),
		sanitizeField(e.DispatchID),
		sanitizeField(e.Actor),
		sanitizeField(e.Text),
	}, "\t") + "\n"
}

// sanitizeField keeps tabs and newlines from breaking the record layout.
func sanitizeField(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
