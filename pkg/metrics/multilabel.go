package metrics

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/Heyedanlty/taskmetrics/pkg/stats"
)

// SkipLabel reports whether a ground-truth code marks a sample as
// overlap-generated rather than an authoritative positive or negative.
// Skipped samples are left out of that label's confusion matrix.
func SkipLabel(v float64) bool {
	return v == 2 || v == 3
}

// MultiLabel scores an N x L prediction matrix label by label and returns
// per-label accuracy, AUC, F1, precision, and recall plus their means
// across labels.
//
// Edge policy per label: with no predicted positives, precision is 1 when
// there are no real positives either and 0 otherwise; with no real
// positives, recall is 1; F1 is 0 only when precision+recall is exactly
// zero. A label AUC that cannot be computed is reported as 0.
func (c Computer) MultiLabel(predRows, labelRows, scoreRows [][]float64) (Series, Result, error) {
	b := c.backend()
	if b == nil {
		return nil, nil, stats.ErrNoBackend
	}
	if len(labelRows) == 0 {
		return nil, nil, errors.New("metrics: no samples")
	}
	labelCount := len(labelRows[0])
	if labelCount == 0 {
		return nil, nil, errors.New("metrics: no label columns")
	}

	log := c.logger()
	acc := make([]float64, labelCount)
	auc := make([]float64, labelCount)
	f1 := make([]float64, labelCount)
	precision := make([]float64, labelCount)
	recall := make([]float64, labelCount)

	var aucErrs *multierror.Error
	for j := 0; j < labelCount; j++ {
		var tp, fp, fn, tn float64
		for i := range labelRows {
			truth := labelRows[i][j]
			if SkipLabel(truth) {
				continue
			}
			switch {
			case predRows[i][j] == 1 && truth == 1:
				tp++
			case predRows[i][j] == 1:
				fp++
			case truth == 1:
				fn++
			default:
				tn++
			}
		}
		log.Debug("label confusion",
			zap.Int("label", j),
			zap.Float64("tp", tp),
			zap.Float64("fp", fp),
			zap.Float64("fn", fn),
			zap.Float64("tn", tn),
			zap.Float64("predicted_pos", tp+fp),
			zap.Float64("actual_pos", tp+fn),
			zap.Float64("correct", tp+tn),
		)

		switch {
		case tp+fp > 0:
			precision[j] = tp / (tp + fp)
		case tp+fn == 0:
			precision[j] = 1
		}
		recall[j] = 1
		if tp+fn > 0 {
			recall[j] = tp / (tp + fn)
		}
		if precision[j]+recall[j] != 0 {
			f1[j] = 2 * precision[j] * recall[j] / (precision[j] + recall[j])
		}
		acc[j] = (tp + tn) / (tp + tn + fp + fn)

		scores, truths := labelColumn(scoreRows, labelRows, j)
		v, err := b.ROCAUC(scores, truths)
		if err != nil {
			aucErrs = multierror.Append(aucErrs, fmt.Errorf("label %d: %w", j, err))
			v = 0
		}
		auc[j] = v
	}
	if err := aucErrs.ErrorOrNil(); err != nil {
		log.Debug("auc reported as zero", zap.Error(err))
	}

	perLabel := Series{
		KeyAcc:       acc,
		KeyAUC:       auc,
		KeyF1:        f1,
		KeyPrecision: precision,
		KeyRecall:    recall,
	}
	// TODO: confirm with the dataset owners that label 0 stays out of the
	// averages; the upstream scoring pipeline excludes it.
	averages := Result{
		KeyAcc:       stat.Mean(acc[1:], nil),
		KeyAUC:       stat.Mean(auc[1:], nil),
		KeyF1:        stat.Mean(f1[1:], nil),
		KeyPrecision: stat.Mean(precision[1:], nil),
		KeyRecall:    stat.Mean(recall[1:], nil),
	}
	return perLabel, averages, nil
}

// labelColumn extracts one label's score and truth columns for ranking.
// Labels past the first drop skip-coded samples; label 0 keeps its full
// column.
// TODO: confirm with the dataset owners whether label 0 should drop
// skip-coded samples like the rest; the upstream scoring pipeline leaves
// its column unfiltered.
func labelColumn(scoreRows, labelRows [][]float64, j int) (scores, truths []float64) {
	for i := range labelRows {
		if j != 0 && SkipLabel(labelRows[i][j]) {
			continue
		}
		scores = append(scores, scoreRows[i][j])
		truths = append(truths, labelRows[i][j])
	}
	return scores, truths
}
