package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GonumBackend computes the statistical primitives with gonum and
// confusion-matrix arithmetic.
type GonumBackend struct{}

func (GonumBackend) MatthewsCorr(preds, labels []float64) (float64, error) {
	if err := checkPaired(preds, labels); err != nil {
		return 0, err
	}
	classes := observedClasses(labels, preds)
	index := make(map[float64]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	k := len(classes)
	confusion := make([]float64, k*k)
	for i := range labels {
		confusion[index[labels[i]]*k+index[preds[i]]]++
	}

	trueCount := make([]float64, k)
	predCount := make([]float64, k)
	var correct float64
	for t := 0; t < k; t++ {
		for p := 0; p < k; p++ {
			n := confusion[t*k+p]
			trueCount[t] += n
			predCount[p] += n
			if t == p {
				correct += n
			}
		}
	}

	total := float64(len(labels))
	var dot, trueSq, predSq float64
	for i := 0; i < k; i++ {
		dot += trueCount[i] * predCount[i]
		trueSq += trueCount[i] * trueCount[i]
		predSq += predCount[i] * predCount[i]
	}

	denom := math.Sqrt(total*total-predSq) * math.Sqrt(total*total-trueSq)
	if denom == 0 {
		return 0, nil
	}
	return (correct*total - dot) / denom, nil
}

func (GonumBackend) Precision(preds, labels []float64, avg Average) (float64, error) {
	p, _, _, err := confusionPRF(preds, labels, avg)
	return p, err
}

func (GonumBackend) Recall(preds, labels []float64, avg Average) (float64, error) {
	_, r, _, err := confusionPRF(preds, labels, avg)
	return r, err
}

func (GonumBackend) F1(preds, labels []float64, avg Average) (float64, error) {
	_, _, f, err := confusionPRF(preds, labels, avg)
	return f, err
}

func (GonumBackend) ROCAUC(scores, labels []float64) (float64, error) {
	if err := checkPaired(scores, labels); err != nil {
		return 0, err
	}
	var pos, neg float64
	for _, v := range labels {
		switch v {
		case 0:
			neg++
		case 1:
			pos++
		default:
			return 0, fmt.Errorf("stats: roc auc needs 0/1 classes, got %g", v)
		}
	}
	if pos == 0 || neg == 0 {
		return 0, errors.New("stats: roc auc needs both classes present")
	}

	// Mann-Whitney form of the area under the ROC curve; averaged ranks
	// give tied scores half credit.
	var posRankSum float64
	for i, r := range ranks(scores) {
		if labels[i] == 1 {
			posRankSum += r
		}
	}
	return (posRankSum - pos*(pos+1)/2) / (pos * neg), nil
}

func (GonumBackend) ROCAUCOvO(scoreRows [][]float64, labels []float64) (float64, error) {
	if len(labels) == 0 {
		return 0, errors.New("stats: empty input")
	}
	if len(scoreRows) != len(labels) {
		return 0, fmt.Errorf("stats: length mismatch: %d score rows, %d labels", len(scoreRows), len(labels))
	}
	width := len(scoreRows[0])
	for i, row := range scoreRows {
		if len(row) != width {
			return 0, fmt.Errorf("stats: score row %d has %d columns, want %d", i, len(row), width)
		}
	}

	classes := observedClasses(labels, nil)
	if len(classes) < 2 {
		return 0, errors.New("stats: one-vs-one auc needs at least two classes")
	}
	if len(classes) != width {
		return 0, fmt.Errorf("stats: %d score columns for %d observed classes", width, len(classes))
	}
	for _, c := range classes {
		if c != math.Trunc(c) || c < 0 || int(c) >= width {
			return 0, fmt.Errorf("stats: class %g has no score column", c)
		}
	}

	// Hand & Till: average the two directed AUCs of every class pair.
	var sum float64
	var pairs int
	for i := 0; i < len(classes); i++ {
		for j := i + 1; j < len(classes); j++ {
			ab := pairAUC(scoreRows, labels, classes[i], classes[j])
			ba := pairAUC(scoreRows, labels, classes[j], classes[i])
			sum += (ab + ba) / 2
			pairs++
		}
	}
	return sum / float64(pairs), nil
}

func (GonumBackend) AveragePrecision(scores, labels []float64) (float64, error) {
	if err := checkPaired(scores, labels); err != nil {
		return 0, err
	}
	var totalPos float64
	for _, v := range labels {
		switch v {
		case 0:
		case 1:
			totalPos++
		default:
			return 0, fmt.Errorf("stats: average precision needs 0/1 classes, got %g", v)
		}
	}
	if totalPos == 0 {
		return 0, errors.New("stats: average precision needs a positive sample")
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })

	// Step-wise sum over the precision-recall curve, grouping tied scores
	// into a single threshold.
	var ap, tp, fp, prevRecall float64
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && scores[order[j]] == scores[order[i]] {
			if labels[order[j]] == 1 {
				tp++
			} else {
				fp++
			}
			j++
		}
		precision := tp / (tp + fp)
		recall := tp / totalPos
		ap += (recall - prevRecall) * precision
		prevRecall = recall
		i = j
	}
	return ap, nil
}

func (GonumBackend) Pearson(x, y []float64) (float64, error) {
	if err := checkPaired(x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, nil), nil
}

func (GonumBackend) Spearman(x, y []float64) (float64, error) {
	if err := checkPaired(x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(ranks(x), ranks(y), nil), nil
}

// confusionPRF derives precision, recall, and F1 from 2x2 confusion counts,
// with divisions by an empty denominator scored as zero.
func confusionPRF(preds, labels []float64, avg Average) (precision, recall, f1 float64, err error) {
	if err := checkPaired(preds, labels); err != nil {
		return 0, 0, 0, err
	}
	switch avg {
	case AverageBinary:
		for i := range labels {
			if (labels[i] != 0 && labels[i] != 1) || (preds[i] != 0 && preds[i] != 1) {
				return 0, 0, 0, errors.New("stats: binary averaging needs 0/1 classes")
			}
		}
		p, r, f := cellPRF(countCells(preds, labels, 1))
		return p, r, f, nil
	case AverageMacro:
		classes := observedClasses(labels, preds)
		ps := make([]float64, len(classes))
		rs := make([]float64, len(classes))
		fs := make([]float64, len(classes))
		for i, c := range classes {
			ps[i], rs[i], fs[i] = cellPRF(countCells(preds, labels, c))
		}
		return stat.Mean(ps, nil), stat.Mean(rs, nil), stat.Mean(fs, nil), nil
	}
	return 0, 0, 0, fmt.Errorf("stats: unknown averaging mode %q", avg)
}

func countCells(preds, labels []float64, class float64) (tp, fp, fn float64) {
	for i := range labels {
		switch {
		case preds[i] == class && labels[i] == class:
			tp++
		case preds[i] == class:
			fp++
		case labels[i] == class:
			fn++
		}
	}
	return tp, fp, fn
}

func cellPRF(tp, fp, fn float64) (precision, recall, f1 float64) {
	if tp+fp > 0 {
		precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		recall = tp / (tp + fn)
	}
	if 2*tp+fp+fn > 0 {
		f1 = 2 * tp / (2*tp + fp + fn)
	}
	return precision, recall, f1
}

// pairAUC ranks the samples of classes pos and neg by the pos score column,
// scoring pos as the positive class. Both classes are known to be present.
func pairAUC(scoreRows [][]float64, labels []float64, pos, neg float64) float64 {
	col := int(pos)
	var scores []float64
	var positive []bool
	for i, v := range labels {
		if v != pos && v != neg {
			continue
		}
		scores = append(scores, scoreRows[i][col])
		positive = append(positive, v == pos)
	}

	var nPos, nNeg, posRankSum float64
	for i, r := range ranks(scores) {
		if positive[i] {
			nPos++
			posRankSum += r
		} else {
			nNeg++
		}
	}
	return (posRankSum - nPos*(nPos+1)/2) / (nPos * nNeg)
}

// ranks assigns 1-based ranks, averaging over tied values.
func ranks(x []float64) []float64 {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })

	r := make([]float64, len(x))
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && x[order[j]] == x[order[i]] {
			j++
		}
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			r[order[k]] = avg
		}
		i = j
	}
	return r
}

// observedClasses returns the sorted distinct values present in either
// slice.
func observedClasses(a, b []float64) []float64 {
	seen := make(map[float64]struct{}, 4)
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		seen[v] = struct{}{}
	}
	classes := make([]float64, 0, len(seen))
	for v := range seen {
		classes = append(classes, v)
	}
	sort.Float64s(classes)
	return classes
}

func checkPaired(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("stats: length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) == 0 {
		return errors.New("stats: empty input")
	}
	return nil
}
