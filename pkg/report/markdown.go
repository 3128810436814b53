package report

import (
	"fmt"
	"io"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report metrics.Report) error {
	if _, err := fmt.Fprintf(r.Writer, "# Metrics Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Task: %s\n\n", report.Task); err != nil {
		return err
	}

	if len(report.Metrics) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
			return err
		}
		for _, key := range sortedKeys(report.Metrics) {
			if _, err := fmt.Fprintf(r.Writer, "| %s | %.4f |\n", key, report.Metrics[key]); err != nil {
				return err
			}
		}
	}

	if len(report.PerLabel) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "## Per label\n\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
			return err
		}
		for _, key := range sortedSeriesKeys(report.PerLabel) {
			for j, v := range report.PerLabel[key] {
				if _, err := fmt.Fprintf(r.Writer, "| %s[%d] | %.4f |\n", key, j, v); err != nil {
					return err
				}
			}
		}
	}

	if len(report.Averages) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "\n## Averages\n\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.Writer, "| Metric | Mean |\n|---|---|\n"); err != nil {
			return err
		}
		for _, key := range sortedKeys(report.Averages) {
			if _, err := fmt.Fprintf(r.Writer, "| %s | %.4f |\n", key, report.Averages[key]); err != nil {
				return err
			}
		}
	}
	return nil
}
