package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// binaryPath holds the path to the compiled binary (set once in TestMain)
var binaryPath string

// testContext holds state for a single scenario
type testContext struct {
	tmpDir   string
	exitCode int
	output   string
}

// buildBinary compiles the phiview binary once
func buildBinary() (string, error) {
	tmpFile, err := os.CreateTemp("", "phiview-test-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpFile.Close()

	// Get the directory of this test file to find the project root
	_, thisFile, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", tmpFile.Name(), "./cmd/phiview")
	cmd.Dir = projectRoot
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build failed: %w\n%s", err, stderr.String())
	}

	return tmpFile.Name(), nil
}

// TestMain compiles the binary once before running all tests
func TestMain(m *testing.M) {
	var err error
	binaryPath, err = buildBinary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(binaryPath)

	code := m.Run()
	os.Exit(code)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	// Setup: create temp directory before each scenario
	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "phiview-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir
		return ctx, nil
	})

	// Teardown: cleanup temp directory after each scenario
	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	// Step definitions
	sc.Step(`^phiview is built$`, tc.phiviewIsBuilt)
	sc.Step(`^a scanner report directory at "([^"]*)"$`, tc.aScannerReportDirectory)
	sc.Step(`^an empty directory at "([^"]*)"$`, tc.anEmptyDirectory)
	sc.Step(`^I run phiview with "([^"]*)"$`, tc.iRunPhiviewWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
	sc.Step(`^"([^"]*)" should contain "([^"]*)"$`, tc.fileShouldContain)
	sc.Step(`^"([^"]*)" should not contain "([^"]*)"$`, tc.fileShouldNotContain)
}

// reportFixtures is one small but representative scanner output set.
var reportFixtures = map[string]string{
	"standard_elements.txt": `List of Standard Elements
(0010,0010) PN PatientName
(0008,0060) CS Modality

(0010,0010) PN PatientName
  DOE^JOHN
(0008,0060) CS Modality
  MR
`,
	"private_elements.txt": `Private Elements
Keys seen in dataset
(0009,xx01) SIEMENS

(0009,xx01) SIEMENS
  <script>alert(1)</script>
`,
	"modalities.txt":    "Modalities\nMR\n",
	"sop_classes.txt":   "SOP Classes\n1.2.840.10008.5.1.4.1.1.4\n",
	"dicom_studies.txt": "Studies\n1.2.3.4\n",
	"counts.txt": `StudyUID Series Files Over1KB Over20KB Over50KB
1.2.3.4 1 42 5 2 0
`,
	"private_creators.txt":       "(0009,0010)\tSIEMENS CSA HEADER\n",
	"large_private_elements.txt": "Hash: cafe01, count: 4\n",
	"scan_summary.txt":           "Total files: 50\nDICOM parsed: 42\nParse errors: 1\n",
}

func (tc *testContext) phiviewIsBuilt() error {
	if binaryPath == "" {
		return fmt.Errorf("binary not built")
	}
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary does not exist at %s", binaryPath)
	}
	return nil
}

func (tc *testContext) aScannerReportDirectory(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	for name, content := range reportFixtures {
		if err := os.WriteFile(filepath.Join(path, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (tc *testContext) anEmptyDirectory(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)
	return os.MkdirAll(path, 0o755)
}

func (tc *testContext) iRunPhiviewWith(args string) error {
	// Replace {tmpdir} placeholder with actual temp directory
	args = strings.ReplaceAll(args, "{tmpdir}", tc.tmpDir)

	// Split args respecting quotes
	argList := splitArgs(args)

	cmd := exec.Command(binaryPath, argList...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	tc.output = output.String()

	if exitErr, ok := err.(*exec.ExitError); ok {
		tc.exitCode = exitErr.ExitCode()
	} else if err != nil {
		return fmt.Errorf("failed to run command: %w", err)
	} else {
		tc.exitCode = 0
	}

	return nil
}

func (tc *testContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nOutput:\n%s", expected, tc.exitCode, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.output, expected) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.output)
	}
	return nil
}

func (tc *testContext) shouldExist(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	return nil
}

func (tc *testContext) fileShouldContain(path, expected string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !strings.Contains(string(data), expected) {
		return fmt.Errorf("%s does not contain %q", path, expected)
	}
	return nil
}

func (tc *testContext) fileShouldNotContain(path, forbidden string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.Contains(string(data), forbidden) {
		return fmt.Errorf("%s contains %q", path, forbidden)
	}
	return nil
}

// splitArgs splits a command line string into arguments
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
