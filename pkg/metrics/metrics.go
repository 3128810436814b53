package metrics

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Heyedanlty/taskmetrics/pkg/stats"
	"github.com/Heyedanlty/taskmetrics/pkg/task"
)

// Computer dispatches evaluation inputs to the metric bundle registered
// for a task. The zero value uses the process-wide statistics backend and
// discards diagnostics.
type Computer struct {
	Backend stats.Backend
	Logger  *zap.Logger
}

func (c Computer) backend() stats.Backend {
	if c.Backend != nil {
		return c.Backend
	}
	return stats.Default()
}

func (c Computer) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// Compute validates the inputs and runs the metric bundle for t. The
// prediction/label pairing is checked before anything else, for known and
// unknown tasks alike.
func (c Computer) Compute(t task.Task, in Inputs) (Report, error) {
	if err := in.validate(t); err != nil {
		return Report{}, err
	}
	if c.backend() == nil {
		return Report{}, stats.ErrNoBackend
	}

	var (
		res Result
		err error
	)
	switch t {
	case task.CoLA:
		res, err = c.matthewsOnly(in.Preds, in.Labels)
	case task.SST2, task.MNLI, task.MNLIMismatched, task.QNLI,
		task.RTE, task.WNLI, task.HANS, task.XNLI:
		res = Result{KeyAcc: SimpleAccuracy(in.Preds, in.Labels)}
	case task.MRPC, task.QQP:
		res, err = c.AccAndF1(in.Preds, in.Labels)
	case task.STSB:
		res, err = c.Correlation(in.Preds, in.Labels)
	case task.DNA690, task.DNAPair:
		res, err = c.BinaryBundle(in.Preds, in.Labels, in.Scores)
	case task.DNAProm, task.DNASplice, task.DNASingleEnhancer:
		res, err = c.MacroBundle(in.Preds, in.Labels, in.ScoreRows)
	case task.DNAEnhancer:
		perLabel, averages, mlErr := c.MultiLabel(in.PredRows, in.LabelRows, in.ScoreRows)
		if mlErr != nil {
			return Report{}, mlErr
		}
		return Report{Task: t, PerLabel: perLabel, Averages: averages}, nil
	default:
		return Report{}, fmt.Errorf("%w: %q", task.ErrUnknown, t)
	}
	if err != nil {
		return Report{}, err
	}
	return Report{Task: t, Metrics: res}, nil
}

func (c Computer) matthewsOnly(preds, labels []float64) (Result, error) {
	mcc, err := c.backend().MatthewsCorr(preds, labels)
	if err != nil {
		return nil, err
	}
	return Result{KeyMCC: mcc}, nil
}
