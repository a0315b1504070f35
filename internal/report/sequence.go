package report

import "strings"

// ParseSequences parses standard_sequences.txt or private_sequences.txt;
// both share one grammar and are namespaced only at aggregation time.
//
// Header lines and blank lines are skipped. A non-indented line opens a
// sequence key; re-encountering a key reuses its existing list rather
// than resetting it. Indented lines append to the currently open key and
// are dropped when no key is open.
func ParseSequences(path string) (*ValueMap, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	sequences := newValueMap()

	current := ""
	for _, line := range lines {
		if strings.HasPrefix(line, "Standard Sequence") ||
			strings.HasPrefix(line, "Private Sequence") ||
			strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "  ") {
			if current != "" {
				sequences.append(current, strings.TrimSpace(line))
			}
			continue
		}
		current = strings.TrimSpace(line)
		sequences.open(current)
	}

	return sequences, nil
}
