package benchmark

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport prints the ranked results as an aligned table, fastest
// variant first.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "variant\treplications\tmean\trelative")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%d\tfailed\t%v\n", r.Variant, r.Replications, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6gs\t%.2fx\n", r.Variant, r.Replications, r.Mean, r.Relative)
	}
	return tw.Flush()
}
