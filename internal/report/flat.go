package report

import (
	"strconv"
	"strings"
)

// ParseSimpleList parses one of the single-column listing files
// (modalities, SOP classes, study UIDs). The first line is always
// treated as a header and skipped regardless of content; every
// subsequent non-blank line is kept in order, duplicates included.
func ParseSimpleList(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var items []string
	if len(lines) < 2 {
		return items, nil
	}
	for _, line := range lines[1:] {
		if v := strings.TrimSpace(line); v != "" {
			items = append(items, v)
		}
	}
	return items, nil
}

// ParseCounts parses counts.txt, a whitespace-delimited per-study table.
// The header line is skipped; rows with fewer than six fields are
// dropped. Numeric columns stay raw text, see CountRow.
func ParseCounts(path string) ([]CountRow, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var rows []CountRow
	if len(lines) < 2 {
		return rows, nil
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		rows = append(rows, CountRow{
			StudyUID: fields[0],
			Files:    fields[2],
			Over1KB:  fields[3],
			Over20KB: fields[4],
			Over50KB: fields[5],
		})
	}
	return rows, nil
}

const creatorsHeader = "Private Creators"

// ParseCreators parses private_creators.txt. Each line splits on the
// first tab into tag and creator ID; lines without a tab, blank lines,
// and the header label are dropped.
func ParseCreators(path string) ([]Creator, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var creators []Creator
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line == creatorsHeader {
			continue
		}
		tag, id, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		creators = append(creators, Creator{Tag: tag, CreatorID: id})
	}
	return creators, nil
}

const (
	largeElementPrefix = "Hash: "
	largeElementSep    = ", count: "
)

// ParseLargeElements parses large_private_elements.txt. Each line has
// the form "Hash: <text>, count: <N>"; the hash text is untrusted and
// kept verbatim. Lines that fail the grammar, including a non-integer
// count, are ignored.
func ParseLargeElements(path string) ([]LargeElement, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var elements []LargeElement
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, largeElementPrefix) {
			continue
		}
		hash, countStr, ok := strings.Cut(strings.TrimPrefix(line, largeElementPrefix), largeElementSep)
		if !ok {
			continue
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			continue
		}
		elements = append(elements, LargeElement{Hash: hash, Count: count})
	}
	return elements, nil
}
