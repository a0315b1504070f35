package report

import (
	"strconv"
	"strings"
)

// ParseScanSummary parses scan_summary.txt, a small "key: value" file of
// scanner counters:
//
//	Total files: 1423
//	DICOM parsed: 1398
//	Parse errors: 2
//
// Unknown keys and malformed lines are ignored. A missing file yields
// the zero summary.
func ParseScanSummary(path string) (ScanSummary, error) {
	lines, err := readLines(path)
	if err != nil {
		return ScanSummary{}, err
	}

	var summary ScanSummary
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "total files":
			summary.TotalFiles = n
		case "dicom parsed":
			summary.DICOMParsed = n
		case "parse errors":
			summary.ParseErrors = n
		}
	}
	return summary, nil
}
