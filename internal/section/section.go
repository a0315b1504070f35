// Package section turns a parsed report into presentation-agnostic
// content sections. The interactive dashboard and the static HTML report
// are both consumers of the same sections; neither ever produces them.
package section

// Node is one piece of section content. Concrete node types are plain
// data with no knowledge of how they will be displayed.
type Node interface {
	node()
}

// Metric is a single labeled figure.
type Metric struct {
	Label string
	Value string
}

// Metrics is a row of figures displayed together.
type Metrics struct {
	Items []Metric
}

func (Metrics) node() {}

// List is a titled list of short values. Empty is shown when there are
// no items.
type List struct {
	Title string
	Items []string
	Empty string
}

func (List) node() {}

// Table is a titled column/row grid. When SortKeys is non-nil it holds
// one numeric key per row; renderers that honor it order rows by key
// descending with a stable sort, so rows with equal keys keep parser
// order. Limit > 0 caps the rows shown after sorting; the renderer
// states how many rows were omitted. Empty is shown for a rowless table.
type Table struct {
	Title    string
	Columns  []string
	Rows     [][]string
	SortKeys []int
	Limit    int
	// LimitNote is shown by renderers that truncate to Limit rows.
	LimitNote string
	Empty     string
}

func (Table) node() {}

// Status classifies a ValueList for review purposes. It is purely a
// function of value-list emptiness, never of value content.
type Status int

const (
	// StatusNone means the list carries no review semantics.
	StatusNone Status = iota
	// StatusClean means no values were observed for the element.
	StatusClean
	// StatusReview means values were observed and need human review.
	StatusReview
)

// ValueList is a labeled run of observed values, typically one DICOM
// element. Annotation carries secondary detail such as the VR code.
type ValueList struct {
	Label      string
	Annotation string
	Status     Status
	Values     []string
}

func (ValueList) node() {}

// Severity classifies a Callout.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeveritySuccess
)

// Callout is a short free-standing message.
type Callout struct {
	Severity Severity
	Text     string
}

func (Callout) node() {}

// Group is a named collapsible container of child nodes.
type Group struct {
	Title    string
	Open     bool
	Children []Node
}

func (Group) node() {}

// Heading is a sub-heading inside a section.
type Heading struct {
	Text string
}

func (Heading) node() {}

// Section is one top-level content section of the review.
type Section struct {
	Title string
	Nodes []Node
}
