package metrics

import "github.com/Heyedanlty/taskmetrics/pkg/task"

// Metric keys. Checkpoint selection upstream matches on these strings, so
// they are part of the wire format.
const (
	KeyAcc       = "acc"
	KeyF1        = "f1"
	KeyAccAndF1  = "acc_and_f1"
	KeyMCC       = "mcc"
	KeyAUC       = "auc"
	KeyAUPR      = "aupr"
	KeyPrecision = "precision"
	KeyRecall    = "recall"
	KeyPearson   = "pearson"
	KeySpearman  = "spearmanr"
	KeyCorr      = "corr"
)

// Result maps a metric key to its value.
type Result map[string]float64

// Series maps a metric key to per-label values, indexed by label column.
type Series map[string][]float64

// Report carries the metrics computed for one task. Scalar bundles fill
// Metrics; the multi-label bundle fills PerLabel and Averages instead.
type Report struct {
	Task     task.Task `json:"task" yaml:"task"`
	Metrics  Result    `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	PerLabel Series    `json:"per_label,omitempty" yaml:"per_label,omitempty"`
	Averages Result    `json:"averages,omitempty" yaml:"averages,omitempty"`
}
