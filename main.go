// sortbench times merge sort and quick sort on sorted, reverse sorted and
// random inputs of several sizes and prints time and peak heap per run.
package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"pingcap/talentplan/tidb/sortbench/dataset"
	"pingcap/talentplan/tidb/sortbench/harness"
	"pingcap/talentplan/tidb/sortbench/report"
)

// Input sizes. Both sorts recurse, so keep these modest.
var sizes = []int{100, 1000, 5000}

func main() {
	log.SetPrefix("sortbench: ")
	log.SetOutput(os.Stderr)

	seed := uint64(time.Now().UnixNano())
	log.Printf("run %s: seed=%d sizes=%v", uuid.New(), seed, sizes)

	blocks, err := run(os.Stdout, sizes, seed)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
	if err := report.WriteScaling(log.Writer(), blocks); err != nil {
		log.Fatalln(err)
	}
}

// run measures every algorithm on every dataset of every size, writing one
// block per size to w as soon as it is complete.
func run(w io.Writer, sizes []int, seed uint64) ([]report.Block, error) {
	rng := dataset.NewSource(seed)
	algorithms := []harness.Algorithm{harness.MergeSort(), harness.QuickSort(rng)}
	printer := report.NewPrinter(w)

	blocks := make([]report.Block, 0, len(sizes))
	for _, size := range sizes {
		triple := dataset.Generate(size, rng)
		block := report.Block{Size: size}
		for _, alg := range algorithms {
			s := report.Series{Algorithm: alg.Name}
			for _, d := range triple {
				m, err := harness.Measure(alg, d.Values)
				if err != nil {
					return nil, err
				}
				log.Printf("size=%d %s/%s: %v, %s", size, alg.Name, d.Kind, m.Elapsed, humanize.IBytes(m.PeakBytes))
				s.Entries = append(s.Entries, report.Entry{Kind: d.Kind, Measurement: m})
			}
			block.Series = append(block.Series, s)
		}
		if err := printer.WriteBlock(block); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
