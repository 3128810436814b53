package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report metrics.Report) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"task", "metric", "label", "value"}
	if err := writer.Write(header); err != nil {
		return err
	}
	task := report.Task.String()
	for _, key := range sortedKeys(report.Metrics) {
		record := []string{task, key, "", formatValue(report.Metrics[key])}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	for _, key := range sortedSeriesKeys(report.PerLabel) {
		for j, v := range report.PerLabel[key] {
			record := []string{task, key, strconv.Itoa(j), formatValue(v)}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	for _, key := range sortedKeys(report.Averages) {
		record := []string{task, key, "mean", formatValue(report.Averages[key])}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
