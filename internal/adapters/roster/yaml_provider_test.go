package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
)

const validRosterYAML = `
- id: 1
  name: Gordon
- id: 3
  name: bot1
  bot: true
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actors.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}
	return path
}

func TestNewYAMLProvider(t *testing.T) {
	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected error, got nil")
	}
	provider, err := NewYAMLProvider("actors.yaml")
	if err != nil {
		t.Fatalf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
}

func TestYAMLProvider_GetActors(t *testing.T) {
	tests := []struct {
		name                string
		content             *string // nil means the file does not exist
		wantActors          []actor.Actor
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:       "file does not exist",
			content:    nil,
			wantActors: []actor.Actor{},
		},
		{
			name:       "empty file",
			content:    ptr(""),
			wantActors: []actor.Actor{},
		},
		{
			name:       "only a comment",
			content:    ptr("# no actors yet\n"),
			wantActors: []actor.Actor{},
		},
		{
			name:       "empty list",
			content:    ptr("[]"),
			wantActors: []actor.Actor{},
		},
		{
			name:    "valid roster",
			content: ptr(validRosterYAML),
			wantActors: []actor.Actor{
				{ID: 1, Name: "Gordon"},
				{ID: 3, Name: "bot1", Bot: true},
			},
		},
		{
			name:                "unknown field",
			content:             ptr("- id: 1\n  name: x\n  team: blue\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal roster",
		},
		{
			name:                "not a list",
			content:             ptr("id: 1 name: x"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal roster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != nil {
				path = writeRoster(t, *tt.content)
			}
			provider, _ := NewYAMLProvider(path)

			actors, err := provider.GetActors()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetActors() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetActors() error = %q, want it to contain %q", err, tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(actors, tt.wantActors) {
				t.Errorf("GetActors() = %#v, want %#v", actors, tt.wantActors)
			}
		})
	}
}

func TestYAMLProvider_FindActor(t *testing.T) {
	provider, _ := NewYAMLProvider(writeRoster(t, validRosterYAML))

	tests := []struct {
		name    string
		ref     string
		wantID  int // 0 means not found
		wantErr bool
	}{
		{name: "by id", ref: "#3", wantID: 3},
		{name: "by name ignoring case", ref: "GORDON", wantID: 1},
		{name: "unknown name", ref: "alyx"},
		{name: "unknown id", ref: "#42"},
		{name: "empty ref", ref: "  "},
		{name: "malformed id", ref: "#x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.FindActor(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindActor(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if tt.wantID == 0 {
				if got != nil {
					t.Errorf("FindActor(%q) = %v, want nil", tt.ref, got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindActor(%q) = %v, want id %d", tt.ref, got, tt.wantID)
			}
		})
	}
}

func ptr(s string) *string { return &s }
