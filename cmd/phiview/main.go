package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrsinham/phiview/cmd/phiview/wizard"
	"github.com/mrsinham/phiview/internal/htmlreport"
	"github.com/mrsinham/phiview/internal/report"
	"github.com/mrsinham/phiview/internal/scanner"
	"github.com/mrsinham/phiview/internal/section"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Scan inputs
	inputDir := flag.String("input", "", "DICOM directory to scan (requires --jar and --rules)")
	jarPath := flag.String("jar", "", "Path to the tag sniffer JAR")
	rulesPath := flag.String("rules", "", "Path to the scan rules file")
	javaPath := flag.String("java", "", "Path to the java executable (auto-detected if not specified)")

	// Review inputs
	reportDir := flag.String("report-dir", "", "Existing scanner output directory to review")

	// Report outputs
	output := flag.String("output", "phi_report.html", "Path for the generated HTML report")
	project := flag.String("project", "", "Project name shown in the report header")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load settings from YAML file")
	saveConfig := flag.String("save-config", "", "Save settings to YAML file")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("phiview %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	// Merge config file values under explicit flags
	if *configFile != "" {
		cfg, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if *inputDir == "" {
			*inputDir = cfg.InputDir
		}
		if *reportDir == "" {
			*reportDir = cfg.ReportDir
		}
		if *jarPath == "" {
			*jarPath = cfg.Jar
		}
		if *rulesPath == "" {
			*rulesPath = cfg.Rules
		}
		if *project == "" {
			*project = cfg.Project
		}
		if cfg.HTMLPath != "" && *output == "phi_report.html" {
			*output = cfg.HTMLPath
		}
	}

	if *saveConfig != "" {
		mode := "review"
		if *inputDir != "" {
			mode = "scan"
		}
		cfg := &wizard.Config{
			Mode:      mode,
			InputDir:  *inputDir,
			ReportDir: *reportDir,
			Project:   *project,
			Jar:       *jarPath,
			Rules:     *rulesPath,
			HTMLPath:  *output,
		}
		if err := wizard.SaveToYAML(cfg, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration saved to %s\n", *saveConfig)
	}

	switch {
	case *inputDir != "":
		if *jarPath == "" || *rulesPath == "" {
			fmt.Fprintln(os.Stderr, "Error: --input requires --jar and --rules")
			printUsage()
			os.Exit(1)
		}
		if err := runScan(*inputDir, *reportDir, *jarPath, *rulesPath, *javaPath, *output, *project); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *reportDir != "":
		if err := runReview(*reportDir, *output, *project); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *saveConfig != "":
		// Config written above, nothing left to do.
	default:
		fmt.Fprintln(os.Stderr, "Error: either --input or --report-dir is required (or use --interactive)")
		printUsage()
		os.Exit(1)
	}
}

// runScan executes the tag sniffer, then renders the report. When no
// report directory is given the scanner output goes to a temporary
// directory that is removed afterwards; it holds PHI.
func runScan(inputDir, reportDir, jarPath, rulesPath, javaPath, output, project string) error {
	if javaPath == "" {
		found, err := scanner.FindJava()
		if err != nil {
			return err
		}
		javaPath = found
	}

	if reportDir == "" {
		tmp, err := os.MkdirTemp("", "phiview-report-*")
		if err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
		defer os.RemoveAll(tmp)
		reportDir = tmp
	}

	fmt.Printf("Scanning %s\n", inputDir)
	runner := scanner.Runner{Java: javaPath, Jar: jarPath, Rules: rulesPath}
	err := runner.Run(context.Background(), inputDir, reportDir, func(line string) {
		fmt.Println("  " + line)
	})
	if err != nil {
		return err
	}

	return renderReport(reportDir, output, project)
}

// runReview renders the report from an existing scanner output directory.
func runReview(reportDir, output, project string) error {
	return renderReport(reportDir, output, project)
}

func renderReport(reportDir, output, project string) error {
	rep, err := report.Load(reportDir)
	if err != nil {
		return err
	}

	model, err := section.Build(rep)
	if err != nil {
		return err
	}

	html := htmlreport.Render(model, project, time.Now())
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing HTML report: %w", err)
	}

	fmt.Printf("\n✓ Report written to %s\n", output)
	fmt.Printf("  DICOM files parsed: %d\n", model.TotalFiles)
	if model.Summary.TotalFiles > 0 {
		fmt.Printf("  Scanner summary: %d total, %d parsed, %d errors\n",
			model.Summary.TotalFiles, model.Summary.DICOMParsed, model.Summary.ParseErrors)
	}
	return nil
}

func printUsage() {
	fmt.Println("\nUsage:")
	fmt.Println("  phiview --report-dir <DIR> [--output <FILE>] [--project <NAME>]")
	fmt.Println("  phiview --input <DIR> --jar <JAR> --rules <FILE> [options]")
	fmt.Println("  phiview --interactive")
	fmt.Println("\nRun 'phiview --help' for details.")
}

func printHelp() {
	fmt.Println("phiview")
	fmt.Println("=======")
	fmt.Println()
	fmt.Println("Review DICOM tag sniffer output for Protected Health Information.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  phiview --report-dir <DIR> [options]")
	fmt.Println("  phiview --input <DIR> --jar <JAR> --rules <FILE> [options]")
	fmt.Println("  phiview wizard [--from <CONFIG>]")
	fmt.Println()
	fmt.Println("Review an existing scan:")
	fmt.Println("  --report-dir <DIR>    Scanner output directory to review")
	fmt.Println()
	fmt.Println("Run a new scan:")
	fmt.Println("  --input <DIR>         DICOM directory to scan")
	fmt.Println("  --jar <JAR>           Path to the tag sniffer JAR")
	fmt.Println("  --rules <FILE>        Path to the scan rules file")
	fmt.Println("  --java <PATH>         Path to the java executable (auto-detected)")
	fmt.Println()
	fmt.Println("Report options:")
	fmt.Println("  --output <FILE>       HTML report path (default: 'phi_report.html')")
	fmt.Println("  --project <NAME>      Project name shown in the report header")
	fmt.Println()
	fmt.Println("Other options:")
	fmt.Println("  --interactive, -i     Launch the interactive wizard")
	fmt.Println("  --config <FILE>       Load settings from a YAML file")
	fmt.Println("  --save-config <FILE>  Save settings to a YAML file")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  phiview --report-dir ./scan-output --output report.html --project \"Site 12\"")
	fmt.Println("  phiview --input /data/dicom --jar sniffer.jar --rules rules.xml")
	fmt.Println("  phiview wizard")
}
