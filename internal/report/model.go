// Package report parses the flat-text output files written by the DICOM
// tag sniffer into an ordered, read-only in-memory model. Each parser is a
// pure function of its input file; a missing file always yields the empty
// container, never an error.
package report

// TagEntry describes one standard DICOM element: its value representation,
// keyword, and every value observed across the dataset in file order.
// Duplicates are preserved; nothing is deduplicated at this layer.
type TagEntry struct {
	Tag     string // "GGGG,EEEE", uppercase hex
	VR      string
	Keyword string
	Values  []string
}

// Catalog is an ordered mapping of tag key to entry, in first-seen file
// order. Only tags present in the listing phase of standard_elements.txt
// ever appear here; values for unlisted tags are discarded.
type Catalog struct {
	keys    []string
	entries map[string]*TagEntry
}

func newCatalog() *Catalog {
	return &Catalog{entries: make(map[string]*TagEntry)}
}

func (c *Catalog) add(e *TagEntry) {
	if _, ok := c.entries[e.Tag]; ok {
		return
	}
	c.keys = append(c.keys, e.Tag)
	c.entries[e.Tag] = e
}

// Keys returns the tag keys in first-seen order.
func (c *Catalog) Keys() []string { return c.keys }

// Get returns the entry for the given tag key.
func (c *Catalog) Get(key string) (*TagEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Values returns the observed values for a tag, or nil if the tag is
// not in the catalog.
func (c *Catalog) Values(key string) []string {
	if e, ok := c.entries[key]; ok {
		return e.Values
	}
	return nil
}

// Len returns the number of catalogued tags.
func (c *Catalog) Len() int { return len(c.keys) }

// ValueMap is an ordered mapping of opaque string keys to value lists,
// in first-seen order. It backs the private element, sequence, and
// date/time structures; the repeat-key semantics differ per parser
// (extend vs. reset) and are chosen by the parser, not by this type.
type ValueMap struct {
	keys   []string
	values map[string][]string
}

func newValueMap() *ValueMap {
	return &ValueMap{values: make(map[string][]string)}
}

// open registers a key if unseen, keeping the existing value list when
// the key reappears.
func (m *ValueMap) open(key string) {
	if _, ok := m.values[key]; ok {
		return
	}
	m.keys = append(m.keys, key)
	m.values[key] = nil
}

// reset registers a key and clears its value list, keeping its original
// position in the key order.
func (m *ValueMap) reset(key string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = nil
}

func (m *ValueMap) append(key, value string) {
	m.values[key] = append(m.values[key], value)
}

// Keys returns the keys in first-seen order.
func (m *ValueMap) Keys() []string { return m.keys }

// Get returns the value list for a key.
func (m *ValueMap) Get(key string) []string { return m.values[key] }

// Len returns the number of keys.
func (m *ValueMap) Len() int { return len(m.keys) }

// CountRow is one row of counts.txt. Numeric fields are carried as the
// raw text from the file; conversion happens at aggregation so that a
// malformed count surfaces as a typed failure instead of a silent zero.
type CountRow struct {
	StudyUID string
	Files    string
	Over1KB  string
	Over20KB string
	Over50KB string
}

// Creator is one row of private_creators.txt: a private creator tag and
// the vendor identifier string that namespaces it.
type Creator struct {
	Tag       string
	CreatorID string
}

// LargeElement records the content hash of a private element exceeding
// the scanner's size thresholds and how often it was seen. The hash is
// carried as untrusted text and never validated as hex.
type LargeElement struct {
	Hash  string
	Count int
}

// ScanSummary holds the scanner's aggregate counters. Skipped files are
// derived: TotalFiles - DICOMParsed - ParseErrors.
type ScanSummary struct {
	TotalFiles  int
	DICOMParsed int
	ParseErrors int
}

// Skipped returns the number of files the scanner neither parsed nor
// failed on (non-DICOM files, thumbnails, DICOMDIR and the like).
func (s ScanSummary) Skipped() int {
	return s.TotalFiles - s.DICOMParsed - s.ParseErrors
}
