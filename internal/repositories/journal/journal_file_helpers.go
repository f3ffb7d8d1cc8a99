package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

func readEntries(path string) ([]journal.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []journal.Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, err := parseEntry(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping journal line: %v\n", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntry(line string) (journal.Entry, error) {
	parts := strings.SplitN(line, "\t", 4)
	if len(parts) != 4 {
		return journal.Entry{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return journal.Entry{}, fmt.Errorf("bad timestamp %q: %w", parts[0], err)
	}
	return journal.Entry{Time: ts, DispatchID: parts[1], Actor: parts[2], Text: parts[3]}, nil
}

// countVerbs counts case-insensitive verbs, most frequent first, ties by verb.
func countVerbs(entries []journal.Entry, tokenizer ports.Tokenizer, outputLimit int) []journal.VerbFrequency {
	counts := make(map[string]int)
	for _, e := range entries {
		argv := tokenizer.Tokenize(e.Text)
		if len(argv) == 0 {
			continue
		}
		counts[strings.ToLower(argv[0])]++
	}

	freqs := make([]journal.VerbFrequency, 0, len(counts))
	for verb, n := range counts {
		freqs = append(freqs, journal.VerbFrequency{Verb: verb, Count: n})
	}
	sort.Slice(freqs, func(i, k int) bool {
		if freqs[i].Count != freqs[k].Count {
			return freqs[i].Count > freqs[k].Count
		}
		return freqs[i].Verb < freqs[k].Verb
	})
	if outputLimit > 0 && len(freqs) > outputLimit {
		freqs = freqs[:outputLimit]
	}
	return freqs
}

// displayPath converts an absolute path to a ~/-based path if it is under the home directory.
func displayPath(absPath string) string {
	home, err := os.UserHomeDir()
	if err != nil || !strings.HasPrefix(absPath, home) {
		return absPath
	}
	if absPath == home {
		return "~"
	}
	rel, err := filepath.Rel(home, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", rel)
}
