package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/phiview/internal/phi"
	"github.com/mrsinham/phiview/internal/report"
)

// CountValueError reports a counts.txt row whose file-count field is not
// an integer. Totals built from counts feed PHI-risk figures, so a bad
// row must fail loudly instead of being coerced to zero or dropped.
type CountValueError struct {
	StudyUID string
	Value    string
}

func (e *CountValueError) Error() string {
	return fmt.Sprintf("study %s: file count %q is not an integer", e.StudyUID, e.Value)
}

// Model is the aggregated, presentation-agnostic view of one report.
type Model struct {
	Sections   []Section
	TotalFiles int
	Modalities []string
	Summary    report.ScanSummary
}

// Build combines a parsed report with the PHI taxonomy into the five
// ordered review sections. It performs no file I/O. The only failure
// mode is a malformed file count (*CountValueError).
func Build(rep *report.Report) (*Model, error) {
	totalFiles, err := totalFileCount(rep.Counts)
	if err != nil {
		return nil, err
	}
	modalities := rep.Standard.Values(phi.ModalityKey)

	m := &Model{
		TotalFiles: totalFiles,
		Modalities: modalities,
		Summary:    rep.Summary,
	}
	m.Sections = []Section{
		overview(rep, modalities, totalFiles),
		phiReview(rep),
		tagExplorer(rep),
		studySummary(rep, totalFiles),
		privateCreators(rep),
	}
	return m, nil
}

// totalFileCount sums the per-study file counts, zero when there are no
// rows.
func totalFileCount(counts []report.CountRow) (int, error) {
	total := 0
	for _, row := range counts {
		n, err := strconv.Atoi(row.Files)
		if err != nil {
			return 0, &CountValueError{StudyUID: row.StudyUID, Value: row.Files}
		}
		total += n
	}
	return total, nil
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func overview(rep *report.Report, modalities []string, totalFiles int) Section {
	nodes := []Node{
		Metrics{Items: []Metric{
			{Label: "DICOM Files Parsed", Value: comma(totalFiles)},
			{Label: "Studies", Value: comma(len(rep.Studies))},
			{Label: "Standard Tags", Value: comma(rep.Standard.Len())},
			{Label: "Private Element Groups", Value: comma(rep.Private.Len())},
		}},
	}

	if s := rep.Summary; s.TotalFiles > 0 {
		parts := []string{fmt.Sprintf("%s files found in project", comma(s.TotalFiles))}
		if s.DICOMParsed > 0 {
			parts = append(parts, fmt.Sprintf("%s DICOM files parsed", comma(s.DICOMParsed)))
		}
		if s.ParseErrors > 0 {
			parts = append(parts, fmt.Sprintf("%s could not be parsed", comma(s.ParseErrors)))
		}
		if skipped := s.Skipped(); skipped > 0 {
			parts = append(parts, fmt.Sprintf("%s non-DICOM skipped", comma(skipped)))
		}
		nodes = append(nodes, Callout{Severity: SeverityInfo, Text: strings.Join(parts, " • ")})
	}

	nodes = append(nodes,
		List{Title: "Modalities", Items: modalities, Empty: "No modality information found"},
		List{Title: "SOP Classes", Items: rep.SOPClasses, Empty: "No SOP classes found"},
	)
	return Section{Title: "Dataset Overview", Nodes: nodes}
}

func phiReview(rep *report.Report) Section {
	var nodes []Node
	for i, group := range phi.Groups() {
		children := make([]Node, 0, len(group.Refs))
		for _, ref := range group.Refs {
			vl := ValueList{
				Label:  fmt.Sprintf("(%s) %s", ref.Key(), ref.Keyword),
				Status: StatusClean,
			}
			if entry, ok := rep.Standard.Get(ref.Key()); ok {
				vl.Annotation = entry.VR
				vl.Values = entry.Values
				if len(entry.Values) > 0 {
					vl.Status = StatusReview
				}
			}
			children = append(children, vl)
		}
		nodes = append(nodes, Group{Title: group.Name, Open: i == 0, Children: children})
	}

	var dates []Node
	if rep.DateTime.Len() == 0 {
		dates = append(dates, Callout{Severity: SeverityInfo, Text: "No date/time elements found"})
	} else {
		for _, key := range rep.DateTime.Keys() {
			dates = append(dates, ValueList{Label: key, Values: rep.DateTime.Get(key)})
		}
	}
	nodes = append(nodes, Group{Title: "Dates & Times", Children: dates})

	return Section{Title: "PHI Review", Nodes: nodes}
}

func tagExplorer(rep *report.Report) Section {
	std := make([]Node, 0, rep.Standard.Len())
	for _, key := range rep.Standard.Keys() {
		entry, _ := rep.Standard.Get(key)
		std = append(std, ValueList{
			Label:      fmt.Sprintf("(%s) %s", entry.Tag, entry.Keyword),
			Annotation: entry.VR,
			Status:     reviewStatus(entry.Values),
			Values:     entry.Values,
		})
	}

	priv := make([]Node, 0, rep.Private.Len())
	for _, key := range rep.Private.Keys() {
		values := rep.Private.Get(key)
		priv = append(priv, ValueList{
			Label:  key,
			Status: reviewStatus(values),
			Values: values,
		})
	}

	// Standard and private sequences merge into one collection,
	// namespaced by origin.
	var seqs []Node
	for _, key := range rep.StandardSeqs.Keys() {
		seqs = append(seqs, ValueList{Label: "[Std] " + key, Values: rep.StandardSeqs.Get(key)})
	}
	for _, key := range rep.PrivateSeqs.Keys() {
		seqs = append(seqs, ValueList{Label: "[Priv] " + key, Values: rep.PrivateSeqs.Get(key)})
	}
	if len(seqs) == 0 {
		seqs = append(seqs, Callout{Severity: SeverityInfo, Text: "No sequence elements found"})
	}

	return Section{Title: "Tag Explorer", Nodes: []Node{
		Group{Title: fmt.Sprintf("Standard Elements (%d)", rep.Standard.Len()), Children: std},
		Group{Title: fmt.Sprintf("Private Elements (%d)", rep.Private.Len()), Children: priv},
		Group{Title: fmt.Sprintf("Sequences (%d)", rep.StandardSeqs.Len()+rep.PrivateSeqs.Len()), Children: seqs},
	}}
}

func reviewStatus(values []string) Status {
	if len(values) > 0 {
		return StatusReview
	}
	return StatusClean
}

func studySummary(rep *report.Report, totalFiles int) Section {
	var nodes []Node
	if len(rep.Counts) > 0 {
		rows := make([][]string, len(rep.Counts))
		for i, row := range rep.Counts {
			rows[i] = []string{row.StudyUID, row.Files, row.Over1KB, row.Over20KB, row.Over50KB}
		}
		nodes = append(nodes,
			Table{
				Columns: []string{"Study UID", "Files", ">1KB", ">20KB", ">50KB"},
				Rows:    rows,
			},
			Metrics{Items: []Metric{{Label: "Total files", Value: comma(totalFiles)}}},
		)
	} else {
		nodes = append(nodes, Callout{Severity: SeverityInfo, Text: "No study data found"})
	}

	nodes = append(nodes, Heading{Text: "Large Private Elements"})
	if len(rep.LargeElems) > 0 {
		totalOccurrences := 0
		rows := make([][]string, len(rep.LargeElems))
		keys := make([]int, len(rep.LargeElems))
		for i, elem := range rep.LargeElems {
			rows[i] = []string{elem.Hash, strconv.Itoa(elem.Count)}
			keys[i] = elem.Count
			totalOccurrences += elem.Count
		}
		nodes = append(nodes,
			Callout{
				Severity: SeverityWarning,
				Text: "Large private elements detected. These are SHA-256 hashes of " +
					"private data elements exceeding size thresholds.",
			},
			Metrics{Items: []Metric{
				{Label: "Unique hashes", Value: comma(len(rep.LargeElems))},
				{Label: "Total occurrences", Value: comma(totalOccurrences)},
			}},
			Table{
				Columns:  []string{"SHA-256 Hash", "Occurrences"},
				Rows:     rows,
				SortKeys: keys,
				Limit:    10,
				LimitNote: fmt.Sprintf(
					"Showing top 10 of %s unique hashes. Full data available in %s",
					comma(len(rep.LargeElems)), report.FileLargeElements),
			},
		)
	} else {
		nodes = append(nodes, Callout{Severity: SeveritySuccess, Text: "No large private elements detected"})
	}

	return Section{Title: "Study Summary", Nodes: nodes}
}

func privateCreators(rep *report.Report) Section {
	if len(rep.Creators) == 0 {
		return Section{Title: "Private Creators", Nodes: []Node{
			Callout{Severity: SeverityInfo, Text: "No private creators found"},
		}}
	}

	vendors := make(map[string]struct{})
	rows := make([][]string, len(rep.Creators))
	for i, c := range rep.Creators {
		vendors[c.CreatorID] = struct{}{}
		rows[i] = []string{c.Tag, c.CreatorID}
	}

	return Section{Title: "Private Creators", Nodes: []Node{
		Metrics{Items: []Metric{
			{Label: "Total Creator Tags", Value: comma(len(rep.Creators))},
			{Label: "Unique Vendors", Value: comma(len(vendors))},
		}},
		Table{Columns: []string{"Tag", "Creator ID"}, Rows: rows},
	}}
}
