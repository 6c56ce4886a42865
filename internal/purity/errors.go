package purity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drakos74/free-cluster/internal/model"
)

var (
	// ShapeMismatchErr signals that labels and cluster assignments cannot be aligned.
	ShapeMismatchErr = errors.New("shape mismatch")
	// EmptyDistributionErr signals a cluster without any recorded label counts.
	EmptyDistributionErr = errors.New("empty distribution")
	// DivisionByZeroErr signals a merged group that sums up to zero.
	DivisionByZeroErr = errors.New("division by zero")
)

// CoverageWarning reports ground-truth labels that were never the majority of any cluster.
// It does not abort an evaluation.
type CoverageWarning struct {
	Groups  int           `json:"groups"`
	Labels  int           `json:"labels"`
	Missing []model.Label `json:"missing"`
}

func (w CoverageWarning) String() string {
	missing := make([]string, len(w.Missing))
	for i, l := range w.Missing {
		missing[i] = string(l)
	}
	return fmt.Sprintf("not all labels recovered: %d merged groups for %d labels, missing [%s]",
		w.Groups, w.Labels, strings.Join(missing, ","))
}
