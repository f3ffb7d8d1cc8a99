package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumericSelectionInput turns input like "1,3-5", "all" or "none" into
// unique 0-based indices below count.
func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool)
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}
