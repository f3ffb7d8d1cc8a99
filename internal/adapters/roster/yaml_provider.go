package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the ActorProvider interface
// by reading the actor roster from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the roster.
func NewYAMLProvider(filePath string) (ports.ActorProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("roster file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetActors reads and parses actors from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetActors() ([]actor.Actor, error) {
	actors := []actor.Actor{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return actors, nil
		}
		return nil, fmt.Errorf("failed to read roster file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return actors, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&actors); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return []actor.Actor{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal roster from %s: %w", p.filePath, err)
	}
	return actors, nil
}

// FindActor resolves "#<id>" by ID and anything else by case-insensitive name.
// It returns nil and no error when no actor matches.
func (p *YAMLProvider) FindActor(ref string) (*actor.Actor, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	actors, err := p.GetActors()
	if err != nil {
		return nil, err
	}

	if idText, ok := strings.CutPrefix(ref, "#"); ok {
		id, err := strconv.Atoi(idText)
		if err != nil {
			return nil, fmt.Errorf("invalid actor id %q: %w", ref, err)
		}
		for i := range actors {
			if actors[i].ID == id {
				return &actors[i], nil
			}
		}
		return nil, nil
	}

	for i := range actors {
		if strings.EqualFold(actors[i].Name, ref) {
			return &actors[i], nil
		}
	}
	return nil, nil
}
