package task

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned for task names outside the dispatch table.
var ErrUnknown = errors.New("unknown task")

// Task identifies an evaluation task and selects its metric bundle.
type Task string

const (
	CoLA              Task = "cola"
	SST2              Task = "sst-2"
	MRPC              Task = "mrpc"
	STSB              Task = "sts-b"
	QQP               Task = "qqp"
	MNLI              Task = "mnli"
	MNLIMismatched    Task = "mnli-mm"
	QNLI              Task = "qnli"
	RTE               Task = "rte"
	WNLI              Task = "wnli"
	HANS              Task = "hans"
	XNLI              Task = "xnli"
	DNAProm           Task = "dnaprom"
	DNA690            Task = "dna690"
	DNAPair           Task = "dnapair"
	DNASplice         Task = "dnasplice"
	DNAEnhancer       Task = "dnaenhancer"
	DNASingleEnhancer Task = "dnasingleenhancer"
)

// All returns every task with a registered metric bundle.
func All() []Task {
	return []Task{
		CoLA, SST2, MRPC, STSB, QQP,
		MNLI, MNLIMismatched, QNLI, RTE, WNLI, HANS, XNLI,
		DNAProm, DNA690, DNAPair, DNASplice, DNAEnhancer, DNASingleEnhancer,
	}
}

// Parse maps a task name to its Task and rejects names that have no
// metric bundle.
func Parse(name string) (Task, error) {
	t := Task(name)
	switch t {
	case CoLA, SST2, MRPC, STSB, QQP,
		MNLI, MNLIMismatched, QNLI, RTE, WNLI, HANS, XNLI,
		DNAProm, DNA690, DNAPair, DNASplice, DNAEnhancer, DNASingleEnhancer:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, name)
}

func (t Task) String() string {
	return string(t)
}

// NeedsScores reports whether the task's bundle ranks probability scores
// in addition to hard predictions.
func (t Task) NeedsScores() bool {
	switch t {
	case DNA690, DNAPair, DNAProm, DNASplice, DNASingleEnhancer, DNAEnhancer:
		return true
	}
	return false
}

// MultiLabel reports whether the task scores an N x L label matrix
// instead of a flat label vector.
func (t Task) MultiLabel() bool {
	return t == DNAEnhancer
}

// Continuous reports whether the task compares real-valued outputs and is
// scored by correlation rather than classification metrics.
func (t Task) Continuous() bool {
	return t == STSB
}
