package report

import (
	"os"
	"strings"
)

// readLines reads a report file into lines without trailing line endings.
// A missing file yields nil lines and no error: every scanner output file
// is optional and absence means "no data", never a failure.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// Trailing newline produces one empty tail line; drop it so line
	// counts match what the scanner wrote.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
