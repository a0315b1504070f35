package report

import "strings"

// ParsePrivateElements parses private_elements.txt. The file opens with
// header lines and a key listing that exists only to be skipped: the
// parser scans for the first blank line past the two header lines and
// treats everything before it as noise. If no such separator exists the
// result is empty; defined behavior, not an error.
//
// After the separator, a non-indented line opens (or re-opens) a group
// key and indented lines append their trimmed content to the open key.
// Blank lines never close the current key.
func ParsePrivateElements(path string) (*ValueMap, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	groups := newValueMap()

	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i > 2 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return groups, nil
	}

	current := ""
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "  ") {
			current = strings.TrimSpace(line)
			groups.open(current)
			continue
		}
		if current != "" {
			groups.append(current, strings.TrimSpace(line))
		}
	}

	return groups, nil
}
