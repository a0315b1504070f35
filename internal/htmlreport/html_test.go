package htmlreport

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mrsinham/phiview/internal/section"
)

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRender_EscapesReportValues(t *testing.T) {
	m := &section.Model{
		Sections: []section.Section{{
			Title: "Tag Explorer",
			Nodes: []section.Node{
				section.ValueList{
					Label:  `(0010,0010) <script>alert("x")</script>`,
					Status: section.StatusReview,
					Values: []string{`<img src=x onerror=alert(1)>`},
				},
			},
		}},
	}

	out := Render(m, `Site <b>12</b>`, fixedTime)

	if strings.Contains(out, "<script>") {
		t.Error("script tag from report data survived unescaped")
	}
	if strings.Contains(out, "<img") {
		t.Error("img tag from report data survived unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped script tag in output")
	}
	if !strings.Contains(out, "Site &lt;b&gt;12&lt;/b&gt;") {
		t.Error("project name must be escaped in the header")
	}
}

func TestRender_EmptyValueMarker(t *testing.T) {
	m := &section.Model{
		Sections: []section.Section{{
			Title: "PHI Review",
			Nodes: []section.Node{
				section.ValueList{
					Label:  "(0010,0010) PatientName",
					Status: section.StatusReview,
					Values: []string{"", "   ", "DOE^JOHN"},
				},
			},
		}},
	}

	out := Render(m, "", fixedTime)

	if got := strings.Count(out, "&lt;empty&gt;"); got != 2 {
		t.Errorf("got %d empty markers, want 2", got)
	}
	if !strings.Contains(out, "DOE^JOHN") {
		t.Error("real value missing from output")
	}
}

func TestRender_TableTopTenWithNote(t *testing.T) {
	var rows [][]string
	var keys []int
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{fmt.Sprintf("hash%02d", i), fmt.Sprintf("%d", i)})
		keys = append(keys, i)
	}

	m := &section.Model{
		Sections: []section.Section{{
			Title: "Study Summary",
			Nodes: []section.Node{
				section.Table{
					Columns:   []string{"SHA-256 Hash", "Occurrences"},
					Rows:      rows,
					SortKeys:  keys,
					Limit:     10,
					LimitNote: "Showing top 10 of 15 unique hashes.",
				},
			},
		}},
	}

	out := Render(m, "", fixedTime)

	// Highest keys survive the cut, lowest are dropped.
	if !strings.Contains(out, "hash14") {
		t.Error("highest-count row missing")
	}
	if !strings.Contains(out, "hash05") {
		t.Error("row at the limit boundary missing")
	}
	if strings.Contains(out, "hash04") {
		t.Error("row beyond the limit must be cut")
	}
	if !strings.Contains(out, "Showing top 10 of 15 unique hashes.") {
		t.Error("limit note missing")
	}

	// Sorted descending: hash14 renders before hash13.
	if strings.Index(out, "hash14") > strings.Index(out, "hash13") {
		t.Error("rows not sorted by key descending")
	}
}

func TestRender_TableStableOnTies(t *testing.T) {
	m := &section.Model{
		Sections: []section.Section{{
			Title: "Study Summary",
			Nodes: []section.Node{
				section.Table{
					Columns:  []string{"Hash", "Count"},
					Rows:     [][]string{{"first", "5"}, {"second", "5"}, {"third", "9"}},
					SortKeys: []int{5, 5, 9},
				},
			},
		}},
	}

	out := Render(m, "", fixedTime)

	iThird := strings.Index(out, "third")
	iFirst := strings.Index(out, "first")
	iSecond := strings.Index(out, "second")
	if !(iThird < iFirst && iFirst < iSecond) {
		t.Errorf("tie order broken: third=%d first=%d second=%d", iThird, iFirst, iSecond)
	}
}

func TestRender_Deterministic(t *testing.T) {
	m := &section.Model{
		TotalFiles: 1423,
		Sections: []section.Section{{
			Title: "Dataset Overview",
			Nodes: []section.Node{
				section.Metrics{Items: []section.Metric{{Label: "DICOM Files Parsed", Value: "1,423"}}},
				section.Group{Title: "Patient Demographics", Open: true, Children: []section.Node{
					section.ValueList{Label: "(0010,0010) PatientName", Status: section.StatusClean},
				}},
			},
		}},
	}

	a := Render(m, "Repro", fixedTime)
	b := Render(m, "Repro", fixedTime)
	if a != b {
		t.Error("identical inputs must render byte-identical output")
	}
}

func TestRender_SelfContained(t *testing.T) {
	m := &section.Model{
		Sections: []section.Section{
			{Title: "Dataset Overview"},
			{Title: "PHI Review"},
		},
	}

	out := Render(m, "", fixedTime)

	for _, marker := range []string{"<!DOCTYPE html>", "<style>", "</html>"} {
		if !strings.Contains(out, marker) {
			t.Errorf("output missing %q", marker)
		}
	}
	for _, forbidden := range []string{"<script", "src=\"http", "href=\"http", "@import"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("output must not contain %q", forbidden)
		}
	}
	if got := strings.Count(out, `<div class="section-divider">`); got != 1 {
		t.Errorf("got %d section dividers, want 1 between 2 sections", got)
	}
	if !strings.Contains(out, "2026-03-14 09:30:00") {
		t.Error("generated timestamp missing")
	}
}

func TestRender_GroupOpenAttribute(t *testing.T) {
	m := &section.Model{
		Sections: []section.Section{{
			Title: "PHI Review",
			Nodes: []section.Node{
				section.Group{Title: "Open Group", Open: true},
				section.Group{Title: "Closed Group"},
			},
		}},
	}

	out := Render(m, "", fixedTime)

	if !strings.Contains(out, "<details open><summary>Open Group</summary>") {
		t.Error("open group must render with the open attribute")
	}
	if !strings.Contains(out, "<details><summary>Closed Group</summary>") {
		t.Error("closed group must render without the open attribute")
	}
}
