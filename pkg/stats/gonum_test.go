package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatthewsCorr(t *testing.T) {
	b := GonumBackend{}

	perfect, err := b.MatthewsCorr([]float64{0, 1, 0, 1}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)

	inverted, err := b.MatthewsCorr([]float64{1, 0, 1, 0}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, inverted, 1e-9)

	mixed, err := b.MatthewsCorr([]float64{1, 0, 1, 1}, []float64{1, 1, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, -1.0/3, mixed, 1e-9)
}

func TestMatthewsCorrDegenerateMarginal(t *testing.T) {
	b := GonumBackend{}

	v, err := b.MatthewsCorr([]float64{1, 1}, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestMatthewsCorrRejectsBadInput(t *testing.T) {
	b := GonumBackend{}

	_, err := b.MatthewsCorr([]float64{1, 0}, []float64{1})
	require.Error(t, err)

	_, err = b.MatthewsCorr(nil, nil)
	require.Error(t, err)
}

func TestBinaryPrecisionRecallF1(t *testing.T) {
	b := GonumBackend{}
	preds := []float64{1, 0, 1, 1}
	labels := []float64{1, 0, 0, 1}

	p, err := b.Precision(preds, labels, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, p, 1e-9)

	r, err := b.Recall(preds, labels, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-9)

	f, err := b.F1(preds, labels, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, f, 1e-9)
}

func TestBinaryF1NoPositives(t *testing.T) {
	b := GonumBackend{}

	f, err := b.F1([]float64{0, 0, 0}, []float64{0, 0, 0}, AverageBinary)
	require.NoError(t, err)
	require.Equal(t, 0.0, f)
}

func TestBinaryAveragingRejectsMulticlass(t *testing.T) {
	b := GonumBackend{}

	_, err := b.F1([]float64{0, 1, 2}, []float64{0, 1, 2}, AverageBinary)
	require.Error(t, err)
}

func TestMacroPrecisionRecallF1(t *testing.T) {
	b := GonumBackend{}
	preds := []float64{0, 1, 2, 0}
	labels := []float64{0, 2, 1, 0}

	p, err := b.Precision(preds, labels, AverageMacro)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, p, 1e-9)

	r, err := b.Recall(preds, labels, AverageMacro)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, r, 1e-9)

	f, err := b.F1(preds, labels, AverageMacro)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, f, 1e-9)
}

func TestUnknownAveragingMode(t *testing.T) {
	b := GonumBackend{}

	_, err := b.F1([]float64{1}, []float64{1}, Average("weighted"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "weighted")
}

func TestROCAUC(t *testing.T) {
	b := GonumBackend{}

	auc, err := b.ROCAUC([]float64{0.1, 0.4, 0.35, 0.8}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, auc, 1e-9)

	perfect, err := b.ROCAUC([]float64{0.1, 0.2, 0.8, 0.9}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)
}

func TestROCAUCTiedScores(t *testing.T) {
	b := GonumBackend{}

	auc, err := b.ROCAUC([]float64{0.5, 0.5, 0.5, 0.5}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, auc, 1e-9)
}

func TestROCAUCDegenerate(t *testing.T) {
	b := GonumBackend{}

	_, err := b.ROCAUC([]float64{0.2, 0.8}, []float64{1, 1})
	require.Error(t, err)

	_, err = b.ROCAUC([]float64{0.2, 0.8, 0.5}, []float64{0, 1, 2})
	require.Error(t, err)
}

func TestROCAUCOvO(t *testing.T) {
	b := GonumBackend{}

	perfect, err := b.ROCAUCOvO([][]float64{
		{0.8, 0.1, 0.1},
		{0.2, 0.7, 0.1},
		{0.1, 0.2, 0.7},
	}, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)

	auc, err := b.ROCAUCOvO([][]float64{
		{0.9, 0.1},
		{0.6, 0.4},
		{0.3, 0.7},
		{0.1, 0.9},
	}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, auc, 1e-9)
}

func TestROCAUCOvOColumnMismatch(t *testing.T) {
	b := GonumBackend{}

	_, err := b.ROCAUCOvO([][]float64{
		{0.5, 0.3, 0.2},
		{0.2, 0.5, 0.3},
	}, []float64{0, 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "observed classes")
}

func TestAveragePrecision(t *testing.T) {
	b := GonumBackend{}

	ap, err := b.AveragePrecision([]float64{0.1, 0.4, 0.35, 0.8}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.8333333333333333, ap, 1e-9)

	perfect, err := b.AveragePrecision([]float64{0.9, 0.8, 0.2, 0.1}, []float64{1, 1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)
}

func TestAveragePrecisionNoPositives(t *testing.T) {
	b := GonumBackend{}

	_, err := b.AveragePrecision([]float64{0.2, 0.8}, []float64{0, 0})
	require.Error(t, err)
}

func TestPearson(t *testing.T) {
	b := GonumBackend{}

	v, err := b.Pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)

	v, err = b.Pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, v, 1e-9)
}

func TestSpearman(t *testing.T) {
	b := GonumBackend{}

	// Monotonic but nonlinear: rank correlation is exact.
	v, err := b.Spearman([]float64{1, 2, 3, 4}, []float64{1, 10, 100, 1000})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)

	tied, err := b.Spearman([]float64{1, 2, 2, 3}, []float64{1, 3, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.9486832980505138, tied, 1e-9)
}

func TestDefaultBinding(t *testing.T) {
	require.True(t, Available())
	require.NotNil(t, Default())

	SetDefault(nil)
	require.False(t, Available())

	SetDefault(GonumBackend{})
	require.True(t, Available())
}
