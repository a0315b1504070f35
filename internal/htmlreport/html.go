// Package htmlreport renders review sections into one self-contained
// HTML document: inline CSS, collapsible <details> blocks, no scripts,
// no external resources. It opens in any browser with no network access.
package htmlreport

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/phiview/internal/section"
)

// Render produces the complete document for the given model. Every value
// drawn from report data is escaped before embedding, so no input can
// alter document structure. Output is byte-identical for identical
// inputs and a fixed generatedAt.
func Render(m *section.Model, project string, generatedAt time.Time) string {
	title := "PHI Report"
	if project != "" {
		title = "PHI Report — " + project
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(title))

	b.WriteString(`<div class="header-info">`)
	fmt.Fprintf(&b, "<span><strong>Generated:</strong> %s</span>",
		esc(generatedAt.Format("2006-01-02 15:04:05")))
	if project != "" {
		fmt.Fprintf(&b, "<span><strong>Project:</strong> %s</span>", esc(project))
	}
	fmt.Fprintf(&b, "<span><strong>DICOM files parsed:</strong> %s</span>", esc(comma(m.TotalFiles)))
	b.WriteString(`</div>`)

	for i, sec := range m.Sections {
		if i > 0 {
			b.WriteString(`<div class="section-divider"></div>`)
		}
		fmt.Fprintf(&b, "<h2>%s</h2>", esc(sec.Title))
		for _, n := range sec.Nodes {
			writeNode(&b, n)
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`, esc(title), css, b.String())
}

func esc(s string) string {
	return html.EscapeString(s)
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func writeNode(b *strings.Builder, n section.Node) {
	switch n := n.(type) {
	case section.Metrics:
		writeMetrics(b, n)
	case section.List:
		writeList(b, n)
	case section.Table:
		writeTable(b, n)
	case section.ValueList:
		writeValueList(b, n)
	case section.Callout:
		writeCallout(b, n)
	case section.Group:
		writeGroup(b, n)
	case section.Heading:
		fmt.Fprintf(b, "<h3>%s</h3>", esc(n.Text))
	}
}

func writeMetrics(b *strings.Builder, m section.Metrics) {
	b.WriteString(`<div class="metrics">`)
	for _, item := range m.Items {
		fmt.Fprintf(b, `<div class="metric"><div class="value">%s</div><div class="label">%s</div></div>`,
			esc(item.Value), esc(item.Label))
	}
	b.WriteString(`</div>`)
}

func writeList(b *strings.Builder, l section.List) {
	fmt.Fprintf(b, "<h3>%s</h3>", esc(l.Title))
	if len(l.Items) == 0 {
		fmt.Fprintf(b, `<div class="info-box">%s</div>`, esc(l.Empty))
		return
	}
	codes := make([]string, len(l.Items))
	for i, item := range l.Items {
		codes[i] = "<code>" + esc(item) + "</code>"
	}
	b.WriteString(strings.Join(codes, ", "))
}

// writeTable emits the grid, honoring the sort-key/limit hints: rows are
// stably ordered by key descending, ties keep parser order, and the
// limit note is appended when rows were cut.
func writeTable(b *strings.Builder, t section.Table) {
	if t.Title != "" {
		fmt.Fprintf(b, "<h3>%s</h3>", esc(t.Title))
	}
	if len(t.Rows) == 0 {
		if t.Empty != "" {
			fmt.Fprintf(b, `<div class="info-box">%s</div>`, esc(t.Empty))
		}
		return
	}

	rows := t.Rows
	if t.SortKeys != nil {
		order := make([]int, len(rows))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, c int) bool {
			return t.SortKeys[order[a]] > t.SortKeys[order[c]]
		})
		sorted := make([][]string, len(rows))
		for i, idx := range order {
			sorted[i] = rows[idx]
		}
		rows = sorted
	}
	truncated := false
	if t.Limit > 0 && len(rows) > t.Limit {
		rows = rows[:t.Limit]
		truncated = true
	}

	b.WriteString(`<div class="table-scroll"><table><tr>`)
	for _, col := range t.Columns {
		fmt.Fprintf(b, "<th>%s</th>", esc(col))
	}
	b.WriteString(`</tr>`)
	for _, row := range rows {
		b.WriteString("<tr>")
		for i, cell := range row {
			// First column holds identifiers (UIDs, tags, hashes);
			// keep them monospaced like the rest of the report.
			if i == 0 {
				fmt.Fprintf(b, "<td><code>%s</code></td>", esc(cell))
			} else {
				fmt.Fprintf(b, "<td>%s</td>", esc(cell))
			}
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</table></div>`)

	if truncated && t.LimitNote != "" {
		fmt.Fprintf(b, "<p><em>%s</em></p>", esc(t.LimitNote))
	}
}

func writeValueList(b *strings.Builder, v section.ValueList) {
	b.WriteString(`<div class="tag-row">`)

	var status string
	switch v.Status {
	case section.StatusClean:
		status = `<span class="status-clean">Empty / Clean</span>`
	case section.StatusReview:
		status = fmt.Sprintf(`<span class="status-review">%d value(s)</span>`, len(v.Values))
	}

	b.WriteString(`<div class="tag-header">`)
	fmt.Fprintf(b, `<span><span class="tag-label">%s</span>`, esc(v.Label))
	if v.Annotation != "" {
		fmt.Fprintf(b, `<span class="tag-vr">%s</span>`, esc(v.Annotation))
	}
	b.WriteString(`</span>`)
	b.WriteString(status)
	b.WriteString(`</div>`)

	if len(v.Values) > 0 {
		b.WriteString(`<div class="values">`)
		for _, value := range v.Values {
			b.WriteString("<div>" + displayValue(value) + "</div>")
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
}

// displayValue escapes a report value, substituting a marker for
// whitespace-only values so empty entries stay visible.
func displayValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return "&lt;empty&gt;"
	}
	return esc(v)
}

func writeCallout(b *strings.Builder, c section.Callout) {
	class := "info-box"
	switch c.Severity {
	case section.SeverityWarning:
		class = "warning-box"
	case section.SeveritySuccess:
		class = "success-box"
	}
	fmt.Fprintf(b, `<div class="%s">%s</div>`, class, esc(c.Text))
}

func writeGroup(b *strings.Builder, g section.Group) {
	openAttr := ""
	if g.Open {
		openAttr = " open"
	}
	fmt.Fprintf(b, `<details%s><summary>%s</summary><div class="content">`, openAttr, esc(g.Title))
	for _, child := range g.Children {
		writeNode(b, child)
	}
	b.WriteString(`</div></details>`)
}
