package report

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeReportFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseStandardElements(t *testing.T) {
	content := `Scan results
List of Standard Elements
(0010,0010) PN PatientName
(0008,0060) CS Modality

(0010,0010) PN PatientName
  DOE^JOHN
  SMITH^ANNA
(0008,0060) CS Modality
  MR
  CT
(0008,0018) UI SOPInstanceUID
  1.2.840.10008.1.1
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileStandardElements, content)

	catalog, err := ParseStandardElements(path)
	if err != nil {
		t.Fatalf("ParseStandardElements failed: %v", err)
	}

	wantKeys := []string{"0010,0010", "0008,0060"}
	if !reflect.DeepEqual(catalog.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", catalog.Keys(), wantKeys)
	}

	entry, ok := catalog.Get("0010,0010")
	if !ok {
		t.Fatal("PatientName not catalogued")
	}
	if entry.VR != "PN" || entry.Keyword != "PatientName" {
		t.Errorf("entry = %+v, want VR=PN Keyword=PatientName", entry)
	}
	if want := []string{"DOE^JOHN", "SMITH^ANNA"}; !reflect.DeepEqual(entry.Values, want) {
		t.Errorf("PatientName values = %v, want %v", entry.Values, want)
	}

	// SOPInstanceUID appears only in the value pass; its values must be
	// dropped because the listing never declared it.
	if _, ok := catalog.Get("0008,0018"); ok {
		t.Error("unlisted tag 0008,0018 must not enter the catalog")
	}
}

func TestParseStandardElements_MissingFile(t *testing.T) {
	catalog, err := ParseStandardElements(filepath.Join(t.TempDir(), FileStandardElements))
	if err != nil {
		t.Fatalf("missing file must not error, got: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
}

func TestParsePrivateElements(t *testing.T) {
	content := `Private Elements
Keys seen in dataset
(0009,xx01) SIEMENS
(0019,xx10) GEMS_ACQU_01

(0009,xx01) SIEMENS
  value one
  value two

(0019,xx10) GEMS_ACQU_01
  other value
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FilePrivateElements, content)

	groups, err := ParsePrivateElements(path)
	if err != nil {
		t.Fatalf("ParsePrivateElements failed: %v", err)
	}

	wantKeys := []string{"(0009,xx01) SIEMENS", "(0019,xx10) GEMS_ACQU_01"}
	if !reflect.DeepEqual(groups.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", groups.Keys(), wantKeys)
	}
	if want := []string{"value one", "value two"}; !reflect.DeepEqual(groups.Get(wantKeys[0]), want) {
		t.Errorf("values = %v, want %v", groups.Get(wantKeys[0]), want)
	}
}

func TestParsePrivateElements_NoSeparator(t *testing.T) {
	content := "Private Elements\nKeys\n(0009,xx01) SIEMENS\n(0019,xx10) GEMS"
	dir := t.TempDir()
	path := writeReportFile(t, dir, FilePrivateElements, content)

	groups, err := ParsePrivateElements(path)
	if err != nil {
		t.Fatalf("ParsePrivateElements failed: %v", err)
	}
	if groups.Len() != 0 {
		t.Errorf("Len() = %d, want 0 when no separator exists", groups.Len())
	}
}

func TestParseSequences_RepeatedKeyExtends(t *testing.T) {
	content := `Standard Sequences
(0008,1140) ReferencedImageSequence
  entry one
(0040,0275) RequestAttributesSequence
  other entry
(0008,1140) ReferencedImageSequence
  entry two
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileStandardSequences, content)

	sequences, err := ParseSequences(path)
	if err != nil {
		t.Fatalf("ParseSequences failed: %v", err)
	}

	got := sequences.Get("(0008,1140) ReferencedImageSequence")
	want := []string{"entry one", "entry two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("repeated key values = %v, want %v (lists must extend)", got, want)
	}
	if sequences.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sequences.Len())
	}
}

func TestParseSequences_OrphanValuesDropped(t *testing.T) {
	content := "Private Sequences\n  dangling value\n"
	dir := t.TempDir()
	path := writeReportFile(t, dir, FilePrivateSequences, content)

	sequences, err := ParseSequences(path)
	if err != nil {
		t.Fatalf("ParseSequences failed: %v", err)
	}
	if sequences.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for values before any key", sequences.Len())
	}
}

func TestParseDateTimeElements(t *testing.T) {
	content := `Date/Time Elements
(0008,0020) DA StudyDate
  20240115
  20240116
(0008,0030) TM StudyTime
  120000
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileDateTimeElements, content)

	elements, err := ParseDateTimeElements(path)
	if err != nil {
		t.Fatalf("ParseDateTimeElements failed: %v", err)
	}

	wantKeys := []string{"(0008,0020) DA StudyDate", "(0008,0030) TM StudyTime"}
	if !reflect.DeepEqual(elements.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", elements.Keys(), wantKeys)
	}
	if want := []string{"20240115", "20240116"}; !reflect.DeepEqual(elements.Get(wantKeys[0]), want) {
		t.Errorf("StudyDate values = %v, want %v", elements.Get(wantKeys[0]), want)
	}
}

func TestParseDateTimeElements_DuplicateKeyOverwrites(t *testing.T) {
	content := `Date/Time Elements
(0008,0020) DA StudyDate
  20240101
  20240102
(0008,0030) TM StudyTime
  090000
(0008,0020) DA StudyDate
  20240301
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileDateTimeElements, content)

	elements, err := ParseDateTimeElements(path)
	if err != nil {
		t.Fatalf("ParseDateTimeElements failed: %v", err)
	}

	got := elements.Get("(0008,0020) DA StudyDate")
	want := []string{"20240301"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("duplicate key values = %v, want %v (last occurrence wins)", got, want)
	}

	// The key keeps its original position.
	if keys := elements.Keys(); keys[0] != "(0008,0020) DA StudyDate" {
		t.Errorf("first key = %q, want StudyDate first", keys[0])
	}
}

func TestParseSimpleList(t *testing.T) {
	content := "Modalities\nMR\nCT\n\nUS\n"
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileModalities, content)

	items, err := ParseSimpleList(path)
	if err != nil {
		t.Fatalf("ParseSimpleList failed: %v", err)
	}
	if want := []string{"MR", "CT", "US"}; !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestParseSimpleList_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileSOPClasses, "SOP Classes\n")

	items, err := ParseSimpleList(path)
	if err != nil {
		t.Fatalf("ParseSimpleList failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestParseCounts(t *testing.T) {
	content := `StudyUID Series Files Over1KB Over20KB Over50KB
1.2.3.4 2 120 40 10 2
1.2.3.5 1 60 12 3 0
short row
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileCounts, content)

	rows, err := ParseCounts(path)
	if err != nil {
		t.Fatalf("ParseCounts failed: %v", err)
	}

	want := []CountRow{
		{StudyUID: "1.2.3.4", Files: "120", Over1KB: "40", Over20KB: "10", Over50KB: "2"},
		{StudyUID: "1.2.3.5", Files: "60", Over1KB: "12", Over20KB: "3", Over50KB: "0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestParseCreators(t *testing.T) {
	content := "Private Creators\n(0009,0010)\tSIEMENS CSA HEADER\n(0019,0010)\tGEMS_ACQU_01\nno tab here\n"
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileCreators, content)

	creators, err := ParseCreators(path)
	if err != nil {
		t.Fatalf("ParseCreators failed: %v", err)
	}

	want := []Creator{
		{Tag: "(0009,0010)", CreatorID: "SIEMENS CSA HEADER"},
		{Tag: "(0019,0010)", CreatorID: "GEMS_ACQU_01"},
	}
	if !reflect.DeepEqual(creators, want) {
		t.Errorf("creators = %+v, want %+v", creators, want)
	}
}

func TestParseLargeElements(t *testing.T) {
	content := `Hash: a3f81c92, count: 14
Hash: deadbeef, count: 3
Hash: broken, count: many
not a hash line
`
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileLargeElements, content)

	elements, err := ParseLargeElements(path)
	if err != nil {
		t.Fatalf("ParseLargeElements failed: %v", err)
	}

	want := []LargeElement{
		{Hash: "a3f81c92", Count: 14},
		{Hash: "deadbeef", Count: 3},
	}
	if !reflect.DeepEqual(elements, want) {
		t.Errorf("elements = %+v, want %+v", elements, want)
	}
}

func TestParseScanSummary(t *testing.T) {
	content := "Total files: 1423\nDICOM parsed: 1398\nParse errors: 2\nUnknown key: 7\n"
	dir := t.TempDir()
	path := writeReportFile(t, dir, FileScanSummary, content)

	summary, err := ParseScanSummary(path)
	if err != nil {
		t.Fatalf("ParseScanSummary failed: %v", err)
	}

	want := ScanSummary{TotalFiles: 1423, DICOMParsed: 1398, ParseErrors: 2}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if got := summary.Skipped(); got != 23 {
		t.Errorf("Skipped() = %d, want 23", got)
	}
}

func TestReadLines_CRLFAndTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := writeReportFile(t, dir, "crlf.txt", "one\r\ntwo\r\n")

	lines, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}
