package metrics

import "github.com/Heyedanlty/taskmetrics/pkg/stats"

// SimpleAccuracy returns the fraction of predictions equal to their labels.
func SimpleAccuracy(preds, labels []float64) float64 {
	var matches float64
	for i := range preds {
		if preds[i] == labels[i] {
			matches++
		}
	}
	return matches / float64(len(preds))
}

// AccAndF1 scores hard binary predictions with accuracy, F1, and their
// arithmetic mean.
func (c Computer) AccAndF1(preds, labels []float64) (Result, error) {
	b := c.backend()
	if b == nil {
		return nil, stats.ErrNoBackend
	}
	acc := SimpleAccuracy(preds, labels)
	f1, err := b.F1(preds, labels, stats.AverageBinary)
	if err != nil {
		return nil, err
	}
	return Result{
		KeyAcc:      acc,
		KeyF1:       f1,
		KeyAccAndF1: (acc + f1) / 2,
	}, nil
}

// AccF1MCC scores hard binary predictions with accuracy, F1, and Matthews
// correlation. No task dispatches here, but callers selecting checkpoints
// on mcc alongside the accuracy pair use it directly.
func (c Computer) AccF1MCC(preds, labels []float64) (Result, error) {
	b := c.backend()
	if b == nil {
		return nil, stats.ErrNoBackend
	}
	f1, err := b.F1(preds, labels, stats.AverageBinary)
	if err != nil {
		return nil, err
	}
	mcc, err := b.MatthewsCorr(preds, labels)
	if err != nil {
		return nil, err
	}
	return Result{
		KeyAcc: SimpleAccuracy(preds, labels),
		KeyF1:  f1,
		KeyMCC: mcc,
	}, nil
}

// BinaryBundle scores a binary task whose scores column holds the
// positive-class probability: accuracy, F1, Matthews correlation, ROC-AUC,
// area under the precision-recall curve, precision, and recall.
func (c Computer) BinaryBundle(preds, labels, scores []float64) (Result, error) {
	b := c.backend()
	if b == nil {
		return nil, stats.ErrNoBackend
	}
	f1, err := b.F1(preds, labels, stats.AverageBinary)
	if err != nil {
		return nil, err
	}
	mcc, err := b.MatthewsCorr(preds, labels)
	if err != nil {
		return nil, err
	}
	auc, err := b.ROCAUC(scores, labels)
	if err != nil {
		return nil, err
	}
	aupr, err := b.AveragePrecision(scores, labels)
	if err != nil {
		return nil, err
	}
	precision, err := b.Precision(preds, labels, stats.AverageBinary)
	if err != nil {
		return nil, err
	}
	recall, err := b.Recall(preds, labels, stats.AverageBinary)
	if err != nil {
		return nil, err
	}
	return Result{
		KeyAcc:       SimpleAccuracy(preds, labels),
		KeyF1:        f1,
		KeyMCC:       mcc,
		KeyAUC:       auc,
		KeyAUPR:      aupr,
		KeyPrecision: precision,
		KeyRecall:    recall,
	}, nil
}

// MacroBundle scores a multiclass task with macro-averaged precision,
// recall, and F1, one-vs-one macro AUC over the per-class score columns,
// accuracy, and Matthews correlation.
func (c Computer) MacroBundle(preds, labels []float64, scoreRows [][]float64) (Result, error) {
	b := c.backend()
	if b == nil {
		return nil, stats.ErrNoBackend
	}
	f1, err := b.F1(preds, labels, stats.AverageMacro)
	if err != nil {
		return nil, err
	}
	mcc, err := b.MatthewsCorr(preds, labels)
	if err != nil {
		return nil, err
	}
	auc, err := b.ROCAUCOvO(scoreRows, labels)
	if err != nil {
		return nil, err
	}
	precision, err := b.Precision(preds, labels, stats.AverageMacro)
	if err != nil {
		return nil, err
	}
	recall, err := b.Recall(preds, labels, stats.AverageMacro)
	if err != nil {
		return nil, err
	}
	return Result{
		KeyAcc:       SimpleAccuracy(preds, labels),
		KeyF1:        f1,
		KeyMCC:       mcc,
		KeyAUC:       auc,
		KeyPrecision: precision,
		KeyRecall:    recall,
	}, nil
}

// Correlation scores real-valued predictions with Pearson and Spearman
// correlation and their arithmetic mean.
func (c Computer) Correlation(preds, labels []float64) (Result, error) {
	b := c.backend()
	if b == nil {
		return nil, stats.ErrNoBackend
	}
	pearson, err := b.Pearson(preds, labels)
	if err != nil {
		return nil, err
	}
	spearman, err := b.Spearman(preds, labels)
	if err != nil {
		return nil, err
	}
	return Result{
		KeyPearson:  pearson,
		KeySpearman: spearman,
		KeyCorr:     (pearson + spearman) / 2,
	}, nil
}
