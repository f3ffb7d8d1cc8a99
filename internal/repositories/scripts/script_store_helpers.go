package scripts

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// readScriptLines returns the command lines of a script file.
// Blank lines and lines starting with "//" or "#" are skipped.
func readScriptLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line, ok := parseScriptLine(scanner.Text()); ok {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func parseScriptLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
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
