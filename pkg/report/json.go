package report

import (
	"encoding/json"
	"io"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(report metrics.Report) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
