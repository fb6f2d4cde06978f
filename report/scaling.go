package report

import (
	"fmt"
	"io"
	"strings"

	"pingcap/talentplan/tidb/sortbench/dataset"
)

// WriteScaling writes, for every algorithm and dataset, the elapsed time
// per n*log2(n) at each size. Roughly flat rows mean n log n growth.
func WriteScaling(w io.Writer, blocks []Block) error {
	type key struct {
		algorithm string
		kind      dataset.Kind
	}
	var order []key
	rows := make(map[key][]string)
	for _, b := range blocks {
		for _, s := range b.Series {
			for _, e := range s.Entries {
				k := key{s.Algorithm, e.Kind}
				if _, ok := rows[k]; !ok {
					order = append(order, k)
				}
				rows[k] = append(rows[k], fmt.Sprintf("n=%d %.3f", b.Size, e.Measurement.PerNLogN(b.Size)))
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("scaling (ns per n*log2(n)):\n")
	for _, k := range order {
		fmt.Fprintf(&sb, "  %s / %s: %s\n", k.algorithm, k.kind, strings.Join(rows[k], ", "))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
