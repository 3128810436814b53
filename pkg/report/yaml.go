package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

type YAMLReporter struct {
	Writer io.Writer
}

func (r YAMLReporter) Report(report metrics.Report) error {
	encoder := yaml.NewEncoder(r.Writer)
	defer encoder.Close()
	return encoder.Encode(report)
}
