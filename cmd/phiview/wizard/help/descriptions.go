package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"mode": {
		Title:       "MODE",
		Description: "Run a new scan or review existing output.",
		Details: `Scan - run the tag sniffer over a DICOM directory, then review
Review - open a directory the tag sniffer already wrote`,
	},
	"input_dir": {
		Title:       "DICOM DIRECTORY",
		Description: "Directory containing the DICOM files to scan.",
		Details:     "The tag sniffer finds all DICOM files under it recursively.",
	},
	"report_dir": {
		Title:       "REPORT DIRECTORY",
		Description: "Directory with the tag sniffer's output files.",
		Details:     "Contains standard_elements.txt, counts.txt and the other report files. Any subset may be missing.",
	},
	"project": {
		Title:       "PROJECT",
		Description: "Project label shown in the report header.",
		Details:     "Defaults to the input directory name when left empty.",
	},
	"jar": {
		Title:       "TAG SNIFFER JAR",
		Description: "Path to the tag sniffer executable JAR.",
		Details:     "Requires a Java runtime on this machine.",
	},
	"rules": {
		Title:       "SCAN RULES",
		Description: "Path to the scan rules XML file.",
		Details: `Rules are display transforms that consolidate high-cardinality
values (dates, times, floats). They do not change which tags are
extracted, only how values are displayed.`,
	},
	"html_path": {
		Title:       "HTML REPORT PATH",
		Description: "Where the standalone HTML report is written.",
		Details:     "A single self-contained file; opens in any browser without network access.",
	},
}
