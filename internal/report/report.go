// Package report renders completed loads into markdown and HTML documents.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"planfeed/app"
	"planfeed/domain/plan"
	"planfeed/internal/profiling"
)

// BuildMarkdown renders a loaded planbook as a markdown report: one
// receipt row per input file, then a distribution summary for each
// numeric series and the downtime calendar.
func BuildMarkdown(pb *app.Planbook) (string, error) {
	var doc strings.Builder

	doc.WriteString("# Planning Inputs Report\n\n")
	writeReceipts(&doc, pb.Receipts())

	doc.WriteString("## Demand\n\n")
	doc.WriteString(fmt.Sprintf("%d products across %d distinct weeks.\n\n",
		len(pb.Demand.DemandData.Products()), len(pb.Demand.DemandData.Weeks())))
	if err := writeDistribution(&doc, "demand quantity", pb.Demand.DemandData.Quantities()); err != nil {
		return "", err
	}

	doc.WriteString("## Capacity\n\n")
	doc.WriteString(fmt.Sprintf("%d machines with per-product capacities.\n\n",
		len(pb.Capacity.CapacityData.Machines())))
	if err := writeDistribution(&doc, "weekly capacity", pb.Capacity.CapacityData.Capacities()); err != nil {
		return "", err
	}

	doc.WriteString("## Transition Times\n\n")
	doc.WriteString(fmt.Sprintf("%d machines with changeover entries.\n\n",
		len(pb.Transtime.TranstimeData.Machines())))
	if err := writeDistribution(&doc, "changeover days", pb.Transtime.TranstimeData.Times()); err != nil {
		return "", err
	}

	writeDowntime(&doc, pb.Downtime.DowntimeData)

	return doc.String(), nil
}

// RenderHTML converts a markdown report into a complete HTML page
func RenderHTML(md string, title string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})

	return markdown.Render(doc, renderer)
}

func writeReceipts(doc *strings.Builder, receipts []plan.LoadSnapshot) {
	doc.WriteString("## Load Receipts\n\n")
	doc.WriteString("| Source | Format | Rows | Fingerprint | Loaded At | Duration (ms) |\n")
	doc.WriteString("|---|---|---:|---|---|---:|\n")
	for _, r := range receipts {
		doc.WriteString(fmt.Sprintf("| %s | %s | %d | `%s` | %s | %d |\n",
			r.Source, r.Format, r.Rows, r.Fingerprint.Short(), r.LoadedAt.String(), r.DurationMs))
	}
	doc.WriteString("\n")
}

func writeDistribution(doc *strings.Builder, name string, values []float64) error {
	summary, err := profiling.Summarize(values)
	if err != nil {
		return fmt.Errorf("profiling %s failed: %w", name, err)
	}

	doc.WriteString(fmt.Sprintf("Distribution of %s (%d values, %d missing):\n\n",
		name, summary.Count, summary.Missing))
	doc.WriteString("| Mean | Std Dev | Min | Median | Max | Q25 | Q75 | Outliers | Normal (p) |\n")
	doc.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---|\n")
	doc.WriteString(fmt.Sprintf("| %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %d | %v (%.3f) |\n\n",
		summary.Mean, summary.StdDev, summary.Min, summary.Median, summary.Max,
		summary.Q25, summary.Q75, summary.Outliers, summary.Normal, summary.NormalP))
	return nil
}

func writeDowntime(doc *strings.Builder, table plan.DowntimeTable) {
	doc.WriteString("## Scheduled Downtime\n\n")

	entries := 0
	for _, set := range table {
		entries += len(set)
	}
	doc.WriteString(fmt.Sprintf("%d weeks with downtime, %d machine-week entries.\n\n",
		len(table), entries))

	for _, week := range table.Weeks() {
		machines := table[week].Machines()
		names := make([]string, len(machines))
		for i, m := range machines {
			names[i] = m.String()
		}
		doc.WriteString(fmt.Sprintf("- %s: %s\n", week, strings.Join(names, ", ")))
	}
	doc.WriteString("\n")
}
