package report

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Fixed filenames written by the tag sniffer into its output directory.
// Every file is independently optional.
const (
	FileStandardElements  = "standard_elements.txt"
	FilePrivateElements   = "private_elements.txt"
	FileDateTimeElements  = "date_time_elements.txt"
	FileModalities        = "modalities.txt"
	FileSOPClasses        = "sop_classes.txt"
	FileStudies           = "dicom_studies.txt"
	FileCounts            = "counts.txt"
	FileCreators          = "private_creators.txt"
	FileStandardSequences = "standard_sequences.txt"
	FilePrivateSequences  = "private_sequences.txt"
	FileLargeElements     = "large_private_elements.txt"
	FileScanSummary       = "scan_summary.txt"
)

// Report is the complete parsed output of one scanner run. It is built
// once per report directory and read-only afterwards.
type Report struct {
	Standard     *Catalog
	Private      *ValueMap
	DateTime     *ValueMap
	StandardSeqs *ValueMap
	PrivateSeqs  *ValueMap
	Modalities   []string
	SOPClasses   []string
	Studies      []string
	Counts       []CountRow
	Creators     []Creator
	LargeElems   []LargeElement
	Summary      ScanSummary
}

// Load parses every report file in dir. The parsers are independent
// pure functions, so they run concurrently; Load joins them all before
// returning. Missing files contribute empty structures.
func Load(dir string) (*Report, error) {
	rep := &Report{}

	type task struct {
		name string
		run  func() error
	}
	tasks := []task{
		{FileStandardElements, func() (err error) {
			rep.Standard, err = ParseStandardElements(filepath.Join(dir, FileStandardElements))
			return
		}},
		{FilePrivateElements, func() (err error) {
			rep.Private, err = ParsePrivateElements(filepath.Join(dir, FilePrivateElements))
			return
		}},
		{FileDateTimeElements, func() (err error) {
			rep.DateTime, err = ParseDateTimeElements(filepath.Join(dir, FileDateTimeElements))
			return
		}},
		{FileStandardSequences, func() (err error) {
			rep.StandardSeqs, err = ParseSequences(filepath.Join(dir, FileStandardSequences))
			return
		}},
		{FilePrivateSequences, func() (err error) {
			rep.PrivateSeqs, err = ParseSequences(filepath.Join(dir, FilePrivateSequences))
			return
		}},
		{FileModalities, func() (err error) {
			rep.Modalities, err = ParseSimpleList(filepath.Join(dir, FileModalities))
			return
		}},
		{FileSOPClasses, func() (err error) {
			rep.SOPClasses, err = ParseSimpleList(filepath.Join(dir, FileSOPClasses))
			return
		}},
		{FileStudies, func() (err error) {
			rep.Studies, err = ParseSimpleList(filepath.Join(dir, FileStudies))
			return
		}},
		{FileCounts, func() (err error) {
			rep.Counts, err = ParseCounts(filepath.Join(dir, FileCounts))
			return
		}},
		{FileCreators, func() (err error) {
			rep.Creators, err = ParseCreators(filepath.Join(dir, FileCreators))
			return
		}},
		{FileLargeElements, func() (err error) {
			rep.LargeElems, err = ParseLargeElements(filepath.Join(dir, FileLargeElements))
			return
		}},
		{FileScanSummary, func() (err error) {
			rep.Summary, err = ParseScanSummary(filepath.Join(dir, FileScanSummary))
			return
		}},
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			errs[i] = t.run()
		}(i, t)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", tasks[i].name, err)
		}
	}
	return rep, nil
}
