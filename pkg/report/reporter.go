package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Heyedanlty/taskmetrics/pkg/metrics"
)

// Reporter renders a computed metrics report.
type Reporter interface {
	Report(report metrics.Report) error
}

const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// New returns the reporter for a format name, writing to w.
func New(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatTable:
		return TableReporter{Writer: w}, nil
	case FormatMarkdown:
		return MarkdownReporter{Writer: w}, nil
	case FormatCSV:
		return CSVReporter{Writer: w}, nil
	case FormatJSON:
		return JSONReporter{Writer: w}, nil
	case FormatYAML:
		return YAMLReporter{Writer: w}, nil
	}
	return nil, fmt.Errorf("unknown report format: %s", format)
}

func sortedKeys(res metrics.Result) []string {
	keys := make([]string, 0, len(res))
	for key := range res {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedSeriesKeys(series metrics.Series) []string {
	keys := make([]string, 0, len(series))
	for key := range series {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
