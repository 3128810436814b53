package stats

import "errors"

// ErrNoBackend is returned when a metric is requested while no statistics
// backend is bound.
var ErrNoBackend = errors.New("stats: no backend bound")

// Average selects how per-class precision, recall, and F1 collapse into a
// single value.
type Average string

const (
	// AverageBinary scores class 1 as the positive class.
	AverageBinary Average = "binary"
	// AverageMacro averages the per-class values, unweighted.
	AverageMacro Average = "macro"
)

// Backend supplies the statistical primitives the metric bundles are
// assembled from.
type Backend interface {
	// MatthewsCorr is the multiclass Matthews correlation coefficient,
	// zero when a confusion-matrix marginal is degenerate.
	MatthewsCorr(preds, labels []float64) (float64, error)

	Precision(preds, labels []float64, avg Average) (float64, error)
	Recall(preds, labels []float64, avg Average) (float64, error)
	F1(preds, labels []float64, avg Average) (float64, error)

	// ROCAUC ranks scores against 0/1 labels and fails when only one
	// class is present or a label is outside {0, 1}.
	ROCAUC(scores, labels []float64) (float64, error)

	// ROCAUCOvO is the macro one-vs-one multiclass AUC over per-class
	// score columns.
	ROCAUCOvO(scoreRows [][]float64, labels []float64) (float64, error)

	// AveragePrecision summarizes the precision-recall curve and fails
	// when no positive sample is present.
	AveragePrecision(scores, labels []float64) (float64, error)

	Pearson(x, y []float64) (float64, error)
	Spearman(x, y []float64) (float64, error)
}

var defaultBackend Backend = GonumBackend{}

// Default returns the process-wide backend.
func Default() Backend {
	return defaultBackend
}

// SetDefault rebinds the process-wide backend. Binding nil makes metric
// computation fail with ErrNoBackend until a backend is bound again.
func SetDefault(b Backend) {
	defaultBackend = b
}

// Available reports whether a backend is bound.
func Available() bool {
	return defaultBackend != nil
}
