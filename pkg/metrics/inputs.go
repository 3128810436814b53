package metrics

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/Heyedanlty/taskmetrics/pkg/task"
)

// ErrLengthMismatch is returned when predictions and labels do not pair up
// index for index. It fires before any metric is computed.
var ErrLengthMismatch = errors.New("prediction/label length mismatch")

// Inputs carries the arrays for one evaluation. Flat tasks fill Preds and
// Labels, ranking tasks add Scores or ScoreRows, and the multi-label task
// fills the row matrices instead.
type Inputs struct {
	Preds  []float64 `json:"preds,omitempty" yaml:"preds,omitempty"`
	Labels []float64 `json:"labels,omitempty" yaml:"labels,omitempty"`
	Scores []float64 `json:"scores,omitempty" yaml:"scores,omitempty"`

	PredRows  [][]float64 `json:"pred_rows,omitempty" yaml:"pred_rows,omitempty"`
	LabelRows [][]float64 `json:"label_rows,omitempty" yaml:"label_rows,omitempty"`
	ScoreRows [][]float64 `json:"score_rows,omitempty" yaml:"score_rows,omitempty"`
}

func (in Inputs) validate(t task.Task) error {
	if t.MultiLabel() {
		return in.validateRows()
	}

	if len(in.Preds) != len(in.Labels) {
		return fmt.Errorf("%w: %d predictions, %d labels", ErrLengthMismatch, len(in.Preds), len(in.Labels))
	}

	var errs *multierror.Error
	switch t {
	case task.DNA690, task.DNAPair:
		if len(in.Scores) != len(in.Labels) {
			errs = multierror.Append(errs, fmt.Errorf("metrics: %d scores for %d samples", len(in.Scores), len(in.Labels)))
		}
	case task.DNAProm, task.DNASplice, task.DNASingleEnhancer:
		if len(in.ScoreRows) != len(in.Labels) {
			errs = multierror.Append(errs, fmt.Errorf("metrics: %d score rows for %d samples", len(in.ScoreRows), len(in.Labels)))
		}
	}
	return errs.ErrorOrNil()
}

func (in Inputs) validateRows() error {
	if len(in.PredRows) != len(in.LabelRows) {
		return fmt.Errorf("%w: %d prediction rows, %d label rows", ErrLengthMismatch, len(in.PredRows), len(in.LabelRows))
	}

	var errs *multierror.Error
	if len(in.ScoreRows) != len(in.LabelRows) {
		errs = multierror.Append(errs, fmt.Errorf("metrics: %d score rows for %d samples", len(in.ScoreRows), len(in.LabelRows)))
	}

	width := 0
	if len(in.LabelRows) > 0 {
		width = len(in.LabelRows[0])
	}
	for _, m := range []struct {
		name string
		rows [][]float64
	}{
		{"label", in.LabelRows},
		{"pred", in.PredRows},
		{"score", in.ScoreRows},
	} {
		for i, row := range m.rows {
			if len(row) != width {
				errs = multierror.Append(errs, fmt.Errorf("metrics: %s row %d has %d columns, want %d", m.name, i, len(row), width))
			}
		}
	}
	return errs.ErrorOrNil()
}
