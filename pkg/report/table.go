package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report metrics.Report) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	for _, key := range sortedKeys(report.Metrics) {
		table.Append([]string{key, fmt.Sprintf("%.4f", report.Metrics[key])})
	}
	for _, key := range sortedSeriesKeys(report.PerLabel) {
		for j, v := range report.PerLabel[key] {
			table.Append([]string{fmt.Sprintf("%s[%d]", key, j), fmt.Sprintf("%.4f", v)})
		}
	}
	for _, key := range sortedKeys(report.Averages) {
		table.Append([]string{key + " (mean)", fmt.Sprintf("%.4f", report.Averages[key])})
	}
	table.Render()
	return nil
}
