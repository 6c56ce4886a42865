package purity

import (
	"fmt"
	"strings"

	"github.com/drakos74/free-cluster/internal/math"
)

// String renders the evaluation as a human readable report.
func (e Evaluation) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("samples: %d | labels: %d | clusters: %d | groups: %d\n",
		e.Samples, len(e.Labels), len(e.Clusters), len(e.Merged)))

	b.WriteString("clusters:\n")
	for _, c := range e.Clusters.Clusters() {
		m := e.Majorities[c]
		b.WriteString(fmt.Sprintf("  %d -> %s %s\n", c, m.Label, e.Clusters[c]))
	}

	b.WriteString("merged:\n")
	for _, l := range e.Merged.Labels() {
		b.WriteString(fmt.Sprintf("  %s -> %s\n", l, e.Merged[l]))
	}

	if e.Warning != nil {
		b.WriteString(fmt.Sprintf("WARNING: %s\n", e.Warning))
	}

	b.WriteString("entropy:\n")
	for _, l := range e.Scores.Labels() {
		s := e.Scores[l]
		terms := make([]string, len(s.Terms))
		for i, t := range s.Terms {
			terms[i] = fmt.Sprintf("%s:%s", t.Label, math.FormatP(t.Value, 4))
		}
		b.WriteString(fmt.Sprintf("  %s -> H=%s purity=%s terms=[%s]\n",
			l, math.FormatP(s.Entropy, 4), math.Format(s.Purity), strings.Join(terms, " ")))
	}

	b.WriteString(fmt.Sprintf("weighted entropy: %s | purity: %s | accuracy: %s\n",
		math.FormatP(e.Entropy, 4), math.Format(e.Purity), math.Format(e.Accuracy)))

	b.WriteString("classes:\n")
	for _, l := range e.Labels {
		c := e.Classes[l]
		b.WriteString(fmt.Sprintf("  %s -> precision=%s recall=%s f1=%s\n",
			l, math.Format(c.Precision), math.Format(c.Recall), math.Format(c.F1)))
	}
	return b.String()
}
