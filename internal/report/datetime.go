package report

import (
	"fmt"
	"strings"
)

const dateTimeHeader = "Date/Time Elements"

// ParseDateTimeElements parses date_time_elements.txt. Keys are the
// composite "(tag) VR KEYWORD" form.
//
// Unlike every other parser in this package, a repeated key does NOT
// extend its list: the second occurrence resets the list and only values
// after it survive. The scanner has always emitted files this way and
// consumers depend on last-occurrence-wins, so the quirk is preserved
// here and pinned by TestParseDateTimeElements_DuplicateKeyOverwrites.
func ParseDateTimeElements(path string) (*ValueMap, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	elements := newValueMap()

	current := ""
	for _, line := range lines {
		if line == dateTimeHeader || strings.TrimSpace(line) == "" {
			continue
		}
		if m := tagLine.FindStringSubmatch(line); m != nil {
			current = fmt.Sprintf("(%s) %s %s", m[1], m[2], m[3])
			elements.reset(current)
			continue
		}
		if current != "" && strings.HasPrefix(line, "  ") {
			elements.append(current, strings.TrimSpace(line))
		}
	}

	return elements, nil
}
