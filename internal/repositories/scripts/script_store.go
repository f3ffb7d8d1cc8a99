package scripts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

const scriptExtension = ".cfg"

var (
	// ErrInvalidScriptName is returned for names that are empty or contain path elements.
	ErrInvalidScriptName = errors.New("invalid script name")
	// ErrScriptNotFound is returned when a script file does not exist.
	ErrScriptNotFound = errors.New("script not found")
)

// FileScriptStore keeps command scripts as .cfg files in one directory.
type FileScriptStore struct {
	dir string
}

// NewFileScriptStore creates a new FileScriptStore rooted at dir.
func NewFileScriptStore(dir string) (ports.ScriptStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("script directory cannot be empty")
	}
	return &FileScriptStore{dir: dir}, nil
}

// ListScripts implements the ports.ScriptStore interface.
// A missing directory yields an empty map.
func (s *FileScriptStore) ListScripts() (map[string]int, error) {
	scripts := make(map[string]int)
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return scripts, nil
		}
		return nil, fmt.Errorf("failed to read script directory %s: %w", displayPath(s.dir), err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != scriptExtension {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), scriptExtension)
		lines, err := readScriptLines(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read script %s: %v\n", entry.Name(), err)
			continue
		}
		scripts[name] = len(lines)
	}
	return scripts, nil
}

// GetScript implements the ports.ScriptStore interface.
func (s *FileScriptStore) GetScript(name string) ([]string, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return nil, err
	}
	lines, err := readScriptLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, name)
		}
		return nil, fmt.Errorf("failed to read script %s: %w", displayPath(path), err)
	}
	return lines, nil
}

// AppendLine implements the ports.ScriptStore interface.
func (s *FileScriptStore) AppendLine(name, line string) (bool, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return false, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return false, fmt.Errorf("cannot append an empty line to script %s", name)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", displayPath(s.dir), err)
	}

	existing, err := readScriptLines(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read script %s: %w", displayPath(path), err)
	}
	for _, l := range existing {
		if l == line {
			return false, nil
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open script %s for appending: %w", displayPath(path), err)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return false, fmt.Errorf("failed to write to script %s: %w", displayPath(path), err)
	}
	return true, nil
}

func (s *FileScriptStore) pathFor(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), scriptExtension)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidScriptName, name)
	}
	return filepath.Join(s.dir, name+scriptExtension), nil
}
