package report

import (
	"regexp"
	"strings"
)

// tagLine matches "(GGGG,EEEE) VR Keyword". The same grammar opens value
// blocks in standard_elements.txt and keys in date_time_elements.txt.
var tagLine = regexp.MustCompile(`^\((\w{4},\w{4})\)\s+(\w+)\s+(.+)$`)

const standardElementsHeader = "List of Standard Elements"

// ParseStandardElements parses standard_elements.txt in two passes over
// the same content.
//
// Pass 1 collects the tag listing: lines are ignored until the header
// sentinel, then every tag-grammar line adds a catalog entry with an
// empty value list. The first blank line after at least one entry ends
// the listing.
//
// Pass 2 collects values: a tag-grammar line selects the current tag,
// but only if pass 1 catalogued it; values under unlisted tags are
// dropped. A line indented by at least two spaces appends its trimmed
// content to the current tag.
func ParseStandardElements(path string) (*Catalog, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	catalog := newCatalog()

	inListing := false
listing:
	for _, line := range lines {
		if line == standardElementsHeader {
			inListing = true
			continue
		}
		if !inListing {
			continue
		}
		if m := tagLine.FindStringSubmatch(line); m != nil {
			catalog.add(&TagEntry{Tag: m[1], VR: m[2], Keyword: m[3]})
			continue
		}
		if strings.TrimSpace(line) == "" && catalog.Len() > 0 {
			break listing
		}
	}

	current := ""
	for _, line := range lines {
		if m := tagLine.FindStringSubmatch(line); m != nil {
			if _, ok := catalog.Get(m[1]); ok {
				current = m[1]
			} else {
				current = ""
			}
			continue
		}
		if current != "" && strings.HasPrefix(line, "  ") {
			entry, _ := catalog.Get(current)
			entry.Values = append(entry.Values, strings.TrimSpace(line))
		}
	}

	return catalog, nil
}
