package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/plexus/internal/field"
	"github.com/spf13/cobra"
)

var benchCounts = []int{60, 200, 400, 800, 1600, 3200}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchSteps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	const w, h = 1920.0, 1080.0
	fmt.Printf("benchmarking connection queries on %.0fx%.0f, %d steps each\n\n", w, h, benchSteps)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tLINKS\tSCAN\tGRID\tSPEEDUP\tSTEPS/SEC (GRID)")

	for _, n := range benchCounts {
		fc := cfg.Field()
		fc.Count = n

		scan := benchQuery(fc, w, h, (*field.Field).ScanConnections)
		grid := benchQuery(fc, w, h, (*field.Field).GridConnections)

		fmt.Fprintf(tw, "%d\t%d\t%v\t%v\t%.2fx\t%.0f\n",
			n, grid.links, scan.perStep, grid.perStep,
			float64(scan.perStep)/float64(max(grid.perStep, 1)),
			1/grid.perStep.Seconds())
	}

	return tw.Flush()
}

type benchResult struct {
	perStep time.Duration
	links   int
}

// benchQuery steps a fixed-seed field and runs query after every step, so
// both strategies see identical particle positions.
func benchQuery(fc field.Config, w, h float64, query func(*field.Field, []field.Link) []field.Link) benchResult {
	f := field.New(fc, rand.New(rand.NewSource(42)))
	f.Reseed(w, h)

	var links []field.Link
	start := time.Now()
	for i := 0; i < benchSteps; i++ {
		f.Step()
		links = query(f, links[:0])
	}
	elapsed := time.Since(start)

	return benchResult{
		perStep: elapsed / time.Duration(benchSteps),
		links:   len(links),
	}
}
