package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, want := range All() {
		got, err := Parse(want.String())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("not-a-task")
	require.ErrorIs(t, err, ErrUnknown)
	require.Contains(t, err.Error(), "not-a-task")
}

func TestParseIsCaseSensitive(t *testing.T) {
	_, err := Parse("MRPC")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestNeedsScores(t *testing.T) {
	require.True(t, DNA690.NeedsScores())
	require.True(t, DNAPair.NeedsScores())
	require.True(t, DNAProm.NeedsScores())
	require.True(t, DNAEnhancer.NeedsScores())
	require.False(t, MRPC.NeedsScores())
	require.False(t, CoLA.NeedsScores())
	require.False(t, STSB.NeedsScores())
}

func TestMultiLabel(t *testing.T) {
	require.True(t, DNAEnhancer.MultiLabel())
	require.False(t, DNAProm.MultiLabel())
	require.False(t, SST2.MultiLabel())
}

func TestContinuous(t *testing.T) {
	require.True(t, STSB.Continuous())
	require.False(t, QQP.Continuous())
}
