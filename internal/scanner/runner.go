// Package scanner invokes the external tag sniffer JAR and captures its
// output. The scanner is an opaque collaborator: it reads a DICOM
// directory and writes the flat-text report files parsed by
// internal/report. Any subset of those files may be missing afterwards;
// tolerating that is the report package's job, not this one's.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// tailSize is how many trailing output lines are retained for diagnosis.
const tailSize = 20

// errorTailLines is how many of those lines an ExitError reports.
const errorTailLines = 10

// ExitError reports a scanner run that exited non-zero, with the tail of
// its combined output. It is distinct from the report package's parse
// failures so callers can tell "the scanner broke" from "the output was
// malformed".
type ExitError struct {
	Code int
	Tail []string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("tag sniffer exited with code %d\n\nLast output:\n%s",
		e.Code, strings.Join(e.Tail, "\n"))
}

// Runner configures a tag sniffer invocation.
type Runner struct {
	Java  string // path to the java executable
	Jar   string // path to the tag sniffer JAR
	Rules string // path to the scan rules XML
}

// Run executes the scanner over inputDir, writing report files into
// outputDir. Each output line is passed to onLine as it arrives (may be
// nil). A non-zero exit returns *ExitError carrying the last lines of
// output.
func (r Runner) Run(ctx context.Context, inputDir, outputDir string, onLine func(string)) error {
	// Command "0": collect unique values, no per-value counts.
	cmd := exec.CommandContext(ctx, r.Java, "-jar", r.Jar, "0", inputDir, outputDir, r.Rules)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting tag sniffer: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		pw.Close()
		done <- err
	}()

	var tail []string
	sc := bufio.NewScanner(pr)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		tail = append(tail, line)
		if len(tail) > tailSize {
			tail = tail[1:]
		}
		if onLine != nil {
			onLine(line)
		}
	}

	err := <-done
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		if len(tail) > errorTailLines {
			tail = tail[len(tail)-errorTailLines:]
		}
		return &ExitError{Code: exitErr.ExitCode(), Tail: tail}
	}
	return fmt.Errorf("running tag sniffer: %w", err)
}
